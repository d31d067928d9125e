package cli

import (
	"github.com/Erik-Martinez/jsapy/internal/inputfile"
	"github.com/Erik-Martinez/jsapy/pkg/noise"
	"github.com/Erik-Martinez/jsapy/pkg/vibration"
)

// Threshold overrides resolve flag first, then the input file section,
// then the config file. Zero means unset at every stage; when all are
// unset the assessment packages apply the regulatory defaults.

// firstPositive returns the first value above zero, or zero.
func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func (a *app) handArmConfig(sec *inputfile.HandArmSection, flagAction, flagLimit float64) vibration.HandArmConfig {
	return vibration.HandArmConfig{
		ActionValue: firstPositive(flagAction, sec.ActionValue, a.cfg.Thresholds.HandArm.ActionValue),
		LimitValue:  firstPositive(flagLimit, sec.LimitValue, a.cfg.Thresholds.HandArm.LimitValue),
	}
}

func (a *app) wholeBodyConfig(sec *inputfile.WholeBodySection, flagAction, flagLimit float64) vibration.WholeBodyConfig {
	return vibration.WholeBodyConfig{
		ActionValue: firstPositive(flagAction, sec.ActionValue, a.cfg.Thresholds.WholeBody.ActionValue),
		LimitValue:  firstPositive(flagLimit, sec.LimitValue, a.cfg.Thresholds.WholeBody.LimitValue),
	}
}

// noiseOverrides carries the noise command's flag values. The protected
// pointer is only set when the flag was given, so an explicit 0 counts.
type noiseOverrides struct {
	infAction float64
	supAction float64
	limit     float64
	protected *float64
}

func (a *app) noiseConfig(sec *inputfile.NoiseSection, o noiseOverrides) noise.Config {
	cfg := noise.Config{
		InfActionValue: firstPositive(o.infAction, sec.InfActionValue, a.cfg.Thresholds.Noise.InfActionValue),
		SupActionValue: firstPositive(o.supAction, sec.SupActionValue, a.cfg.Thresholds.Noise.SupActionValue),
		LimitValue:     firstPositive(o.limit, sec.LimitValue, a.cfg.Thresholds.Noise.LimitValue),
	}
	cfg.ProtectedLevel = sec.ProtectedLevel
	if o.protected != nil {
		cfg.ProtectedLevel = o.protected
	}
	return cfg
}

package bands

// SplitConfig sets the thresholds for the fail/mid/high partition and the
// bimodality rule.
type SplitConfig struct {
	// PassThreshold and HighThreshold partition normalized totals into
	// fail [0, pass), mid [pass, high) and high [high, 1].
	PassThreshold float64
	HighThreshold float64
	// MidFraction: the cohort is flagged bimodal when the mid share falls
	// below this fraction of the combined tail shares.
	MidFraction float64
	// MinTailShare guards against flagging one-sided cohorts: both tails
	// must hold at least this share before the flag can be set.
	MinTailShare float64
}

// Split is the fail/mid/high partition of the cohort, as shares of the
// student count. Shares sum to 1.
type Split struct {
	Fail float64
	Mid  float64
	High float64
	// Bimodal is set when the mid band is hollow relative to both tails,
	// the valley signature of a two-population cohort.
	Bimodal bool
}

// Classify partitions the original totals and applies the bimodality rule.
func Classify(orig []float64, cfg SplitConfig) Split {
	n := len(orig)
	if n == 0 {
		return Split{}
	}
	var fail, mid, high int
	for _, s := range orig {
		switch {
		case s < cfg.PassThreshold:
			fail++
		case s < cfg.HighThreshold:
			mid++
		default:
			high++
		}
	}
	split := Split{
		Fail: float64(fail) / float64(n),
		Mid:  float64(mid) / float64(n),
		High: float64(high) / float64(n),
	}
	tails := split.Fail + split.High
	split.Bimodal = split.Mid < cfg.MidFraction*tails &&
		split.Fail >= cfg.MinTailShare &&
		split.High >= cfg.MinTailShare
	return split
}

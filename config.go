package prakriya

// Config holds per-derivation options (spec.md §3.2, §6). Mirrors the
// constructor-options pattern of collatinus.New(dataDir), but since this
// engine has no on-disk tables to load, Config instead seeds the
// initial Prakriya state.
type Config struct {
	// LogSteps, if true, retains a per-rule text snapshot in History.
	LogSteps bool
	// IsChandasi allows Vedic (chandasa) rules to fire.
	IsChandasi bool
	// UseSvaras runs accent (svara) rules as the final main-rule step.
	UseSvaras bool
	// RuleChoicesPrefix preseeds rule_choices; optional_run replays these
	// decisions in order, then defaults to Accept beyond the prefix.
	// Used exclusively by the explorer (explorer.Stack) to restart a
	// derivation from a seeded decision path.
	RuleChoicesPrefix []RuleChoice
}

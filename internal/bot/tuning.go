package bot

// Tuning structs hold the probabilities behind every random decision a
// strategy makes. The defaults reproduce the tiers' intended
// personalities; tests override individual fields to force a branch.

// EasyTuning drives the Easy tier's single random decision.
type EasyTuning struct {
	// RandomTakeChance is rolled when every attack is beatable.
	RandomTakeChance float64
}

// MediumTuning drives the Medium tier's random decisions.
type MediumTuning struct {
	// TrumpSaveTakeChance is rolled when defending would spend two or
	// more trumps.
	TrumpSaveTakeChance float64
	// StopAddingChance is rolled before looking for follow-up attacks.
	StopAddingChance float64
	// AddTrumpChance is rolled when the defender has already spent a
	// trump and a matching trump could be added.
	AddTrumpChance float64
	// PassChance is rolled when a same-rank pass card is available.
	PassChance float64
	// TrumpHighValueChance is rolled when a high-value attack could be
	// answered with a trump.
	TrumpHighValueChance float64
}

// HardTuning drives the Hard tier's random decisions.
type HardTuning struct {
	// AddTrumpChance is rolled when the defender has spent a trump and
	// a matching trump could pressure them further.
	AddTrumpChance float64
	// EasyDefenseStopChance is rolled when every table entry is already
	// defended.
	EasyDefenseStopChance float64
	// CrowdedStopChance is rolled when three or more entries are on the
	// table.
	CrowdedStopChance float64
	// PassChance is rolled when a safe pass card is available.
	PassChance float64
}

var DefaultEasyTuning = EasyTuning{
	RandomTakeChance: 0.5,
}

var DefaultMediumTuning = MediumTuning{
	TrumpSaveTakeChance:  0.4,
	StopAddingChance:     0.3,
	AddTrumpChance:       0.3,
	PassChance:           0.3,
	TrumpHighValueChance: 0.7,
}

var DefaultHardTuning = HardTuning{
	AddTrumpChance:        0.7,
	EasyDefenseStopChance: 0.8,
	CrowdedStopChance:     0.5,
	PassChance:            0.6,
}

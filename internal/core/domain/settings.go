package domain

import "fmt"

const unknownDescription = "Unknown"

// DisplaySettings controls how numbers and reduced forms are printed.
type DisplaySettings struct {
	// Precision is the maximum number of decimals for fractional values.
	// -1 keeps the shortest exact representation.
	Precision int

	// Pretty renders the reduced form with sign-aware joins.
	Pretty bool
}

// ParserSettings controls how equation text is tokenised.
type ParserSettings struct {
	// Strict rejects characters the tolerant parser would skip.
	Strict bool
}

// HistorySettings controls solve history recording.
type HistorySettings struct {
	// Enabled records every solve to the history store.
	Enabled bool

	// Limit is the default number of entries listed.
	Limit int
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Display DisplaySettings
	Parser  ParserSettings
	History HistorySettings
}

// MaxPrecision bounds DisplaySettings.Precision.
const MaxPrecision = 15

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Display: DisplaySettings{
			Precision: -1,
			Pretty:    false,
		},
		Parser: ParserSettings{
			Strict: false,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   20,
		},
	}
}

// Validate checks that every setting is in range.
func (s AppSettings) Validate() error {
	if s.Display.Precision < -1 || s.Display.Precision > MaxPrecision {
		return fmt.Errorf("%w: display precision must be between -1 and %d, got %d",
			ErrInvalidInput, MaxPrecision, s.Display.Precision)
	}
	if s.History.Limit <= 0 {
		return fmt.Errorf("%w: history limit must be positive, got %d", ErrInvalidInput, s.History.Limit)
	}
	return nil
}

package arith

// Params defines the configurable behaviour of the engine service
type Params struct {
	// StrictConversion rejects numeric operands above 9. When false, such
	// operands are clamped to nine.
	StrictConversion bool

	// AllowSymbols accepts operator symbols (+, -, *, x, /) in addition to names.
	AllowSymbols bool
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	// SaturateOrdinals turns off strict conversion
	SaturateOrdinals bool

	// NamesOnly accepts only the canonical operator names (add, subtract,
	// multiply, divide)
	NamesOnly bool
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		StrictConversion: true,
		AllowSymbols:     true,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.SaturateOrdinals {
		params.StrictConversion = false
	}
	if config.NamesOnly {
		params.AllowSymbols = false
	}

	return params
}

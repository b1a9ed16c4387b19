package cli

type state int

const (
	stateReady state = iota
	stateAwaitingColor
	stateAwaitingManifestPath
	stateFinished
)

// buffer accumulates options during the fold. A nil field is unset.
type buffer struct {
	state     state
	help      bool
	showUsage bool

	color        *Color
	verbosity    *Verbosity
	manifestPath *string
	templatePath *string
}

// trySet stores val in *slot if it is still unset; otherwise the option was
// repeated and the invocation is a usage error.
func trySet[T any](b *buffer, slot **T, val T) {
	if *slot != nil {
		b.showUsage = true
		return
	}
	*slot = &val
}

// Interpret folds tokens into Options. tokens excludes the program name.
// It returns ErrHelp for -h/--help and an error wrapping ErrShowUsage for
// any other invalid invocation, including a flag left without its value.
func Interpret(tokens []string) (Options, error) {
	b := &buffer{}
	for _, tok := range tokens {
		b.push(tok)
	}
	return b.build()
}

func (b *buffer) push(tok string) {
	switch b.state {
	case stateReady:
		b.pushReady(tok)
	case stateAwaitingColor:
		b.state = stateReady
		c, ok := ParseColor(tok)
		if !ok {
			b.showUsage = true
			return
		}
		trySet(b, &b.color, c)
	case stateAwaitingManifestPath:
		b.state = stateReady
		trySet(b, &b.manifestPath, tok)
	case stateFinished:
		b.showUsage = true
	}
}

func (b *buffer) pushReady(tok string) {
	switch tok {
	case "-h", "--help":
		b.help = true
	case "-v", "--verbose":
		trySet(b, &b.verbosity, Verbose)
	case "-q", "--quiet":
		trySet(b, &b.verbosity, Quiet)
	case "--manifest-path":
		b.state = stateAwaitingManifestPath
	case "--color":
		b.state = stateAwaitingColor
	default:
		if len(tok) > 1 && tok[0] == '-' {
			// Unknown flag. It is not taken as the template path.
			b.showUsage = true
			return
		}
		trySet(b, &b.templatePath, tok)
		b.state = stateFinished
	}
}

func (b *buffer) build() (Options, error) {
	// A malformed invocation is reported even when help was also asked for.
	if b.showUsage || b.state == stateAwaitingColor || b.state == stateAwaitingManifestPath {
		return Options{}, ErrShowUsage
	}
	if b.help {
		return Options{}, ErrHelp
	}

	opts := Options{
		Color:        ColorAuto,
		Verbosity:    Normal,
		ManifestPath: DefaultManifestPath,
		TemplatePath: DefaultTemplatePath,
	}
	if b.color != nil {
		opts.Color = *b.color
		opts.ColorSet = true
	}
	if b.verbosity != nil {
		opts.Verbosity = *b.verbosity
	}
	if b.manifestPath != nil {
		opts.ManifestPath = *b.manifestPath
	}
	if b.templatePath != nil {
		opts.TemplatePath = *b.templatePath
	}
	return opts, nil
}

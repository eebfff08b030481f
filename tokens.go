package speakify

// Kind classifies the token a scanner pass is looking for. The order of
// the constants is the priority order of the passes: the pipeline runs
// them top to bottom, and the tracked buffer's disjointness invariant
// guarantees a span claimed by an earlier pass is never re-edited by a
// later one.
type Kind int

const (
	KindFencedCode Kind = iota
	KindDiagramBlock
	KindInlineCode
	KindURL
	KindEmail
	KindIPv4
	KindFilePath
	KindVersion
	KindSizeUnit
	KindPercentage
	KindDate
	KindTime
	KindRange
	KindAbbreviation
	KindCamelIdent
	KindSnakeIdent
	KindKebabIdent
	KindFloat
	KindInteger
	KindOperator
	KindEnglishWord
)

// String returns the token kind name.
func (k Kind) String() string {
	switch k {
	case KindFencedCode:
		return "fenced_code"
	case KindDiagramBlock:
		return "diagram_block"
	case KindInlineCode:
		return "inline_code"
	case KindURL:
		return "url"
	case KindEmail:
		return "email"
	case KindIPv4:
		return "ipv4"
	case KindFilePath:
		return "file_path"
	case KindVersion:
		return "version"
	case KindSizeUnit:
		return "size_unit"
	case KindPercentage:
		return "percentage"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindRange:
		return "range"
	case KindAbbreviation:
		return "abbreviation"
	case KindCamelIdent:
		return "camel_ident"
	case KindSnakeIdent:
		return "snake_ident"
	case KindKebabIdent:
		return "kebab_ident"
	case KindFloat:
		return "float"
	case KindInteger:
		return "integer"
	case KindOperator:
		return "operator"
	case KindEnglishWord:
		return "english_word"
	default:
		return "unknown"
	}
}

// Stats counts the recoverable anomalies of one Process call. None of
// them fail the call; the text always comes back.
type Stats struct {
	// OverlapDropped counts substitutions skipped because they would
	// have re-edited an already replaced span.
	OverlapDropped int

	// MalformedNumbers counts tokens that looked numeric but did not
	// parse and fell through to later passes.
	MalformedNumbers int

	// UnknownUnits counts size-unit matches whose unit word is not in
	// the table; the number and the unit are handled separately.
	UnknownUnits int

	// RejectedDictEntries counts user dictionary entries refused at
	// construction (empty or non-ASCII keys).
	RejectedDictEntries int
}

package omml

// Kind identifies the variant of a math markup node.
type Kind string

const (
	KindText      Kind = "text"      // raw character run
	KindGroup     Kind = "group"     // ordered children, concatenated
	KindFraction  Kind = "fraction"  // numerator over denominator
	KindSupSub    Kind = "supsub"    // base with subscript and/or superscript
	KindRadical   Kind = "radical"   // square or n-th root
	KindNary      Kind = "nary"      // sum, product, integral, ...
	KindDelimiter Kind = "delimiter" // bracketed expression
	KindFunction  Kind = "function"  // named function applied to an argument
	KindMatrix    Kind = "matrix"    // rows of cells
	KindAccent    Kind = "accent"    // hat, bar, vector arrow, ...
	KindBar       Kind = "bar"       // overline
	KindGroupChar Kind = "groupchar" // underbrace / overbrace
	KindPreScript Kind = "prescript" // scripts before the base (tensor notation)
	KindEqArray   Kind = "eqarray"   // aligned equations
	KindUnknown   Kind = "unknown"   // unrecognized element, children preserved
)

// Node is one element of a math markup tree. Which fields are meaningful
// depends on Kind; children are owned exclusively, forming a strict tree.
// A nil child pointer means the child is absent.
type Node struct {
	Kind Kind

	// Text carries the raw characters of a KindText run.
	Text string

	// Char is the operator character of a KindNary, the accent character of a
	// KindAccent, or the brace character of a KindGroupChar.
	Char string

	// Open and Close are the delimiter characters of a KindDelimiter.
	Open  string
	Close string

	// HideDegree marks a KindRadical as a square root (index omitted).
	HideDegree bool

	// Tag records the original element name of a KindUnknown node.
	Tag string

	Base *Node // radicand, script base, operand, argument or delimited body
	Sub  *Node
	Sup  *Node
	Num  *Node
	Den  *Node
	Deg  *Node
	Name *Node // function name

	Rows  [][]Node // KindMatrix cells, row-major
	Items []Node   // KindGroup, KindEqArray and KindUnknown children
}

package output

// Console strings. Keep these as the single source of truth; apps and tests use them.
const (
	PromptSequence = "Enter a positive integer: "
	PromptSeries   = "Enter the required polynomial order: "
	PromptArray    = "Size of the array: "

	SequenceHeader = "The Fibonacci sequence is:"
	MsgNotPositive = "The number is not positive."
	MsgNotANumber  = "Didn't enter a number."
)

// TermsPerLine is how many sequence terms are printed before a line break.
const TermsPerLine = 10

// Widths reported in SequenceV1.Width.
const (
	WidthInt32 = "int32"
	WidthBig   = "big"
)

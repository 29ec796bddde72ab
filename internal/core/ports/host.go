package ports

import "context"

// Dialog is the blocking user-interaction boundary of the host page.
type Dialog interface {
	// Prompt asks for a line of text. ok is false when the user cancels.
	Prompt(ctx context.Context, message string) (text string, ok bool, err error)
	// Alert shows a message and returns once it is dismissed.
	Alert(ctx context.Context, message string) error
}

// Clipboard supports best-effort copy-to-clipboard.
// Callers never fail an operation because the clipboard is unavailable.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// URLOpener opens a URL in a new browsing context of the host.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}

// RateQuote is the decoded answer of a rate source.
// Found is false when the payload was well formed but carried no usable rate.
type RateQuote struct {
	Rate  float64
	Found bool
}

// RateProvider fetches the live EUR→USD rate. Any error means the rate
// could not be obtained; causes are not distinguished further.
type RateProvider interface {
	FetchEURUSD(ctx context.Context) (RateQuote, error)
}

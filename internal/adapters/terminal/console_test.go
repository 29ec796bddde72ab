package terminal_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/usdt_desk/internal/adapters/terminal"
	"github.com/SscSPs/usdt_desk/internal/core/ports"
	portsrepo "github.com/SscSPs/usdt_desk/internal/core/ports/repositories"
	"github.com/SscSPs/usdt_desk/internal/core/services"
	"github.com/SscSPs/usdt_desk/internal/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deskButtons = []terminal.Button{
	{ID: page.LauncherElementID, Label: "Conversor XE"},
	{ID: page.ConverterElementID, Label: "Conversor manual"},
}

type stubRates struct {
	quote ports.RateQuote
	err   error
	calls int
}

func (s *stubRates) FetchEURUSD(context.Context) (ports.RateQuote, error) {
	s.calls++
	return s.quote, s.err
}

type recordingOpener struct{ urls []string }

func (o *recordingOpener) Open(_ context.Context, url string) error {
	o.urls = append(o.urls, url)
	return nil
}

type recordingClipboard struct{ texts []string }

func (c *recordingClipboard) WriteText(_ context.Context, text string) error {
	c.texts = append(c.texts, text)
	return nil
}

func TestConsolePrompt(t *testing.T) {
	var out bytes.Buffer
	c := terminal.NewConsole(strings.NewReader("12,50\r\n"), &out)

	text, ok, err := c.Prompt(context.Background(), "Cantidad en €:")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12,50", text)
	assert.Equal(t, "Cantidad en €: ", out.String())
}

func TestConsolePrompt_LastLineWithoutNewline(t *testing.T) {
	c := terminal.NewConsole(strings.NewReader("7"), &bytes.Buffer{})

	text, ok, err := c.Prompt(context.Background(), "?")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", text)
}

func TestConsolePrompt_EOFCancels(t *testing.T) {
	c := terminal.NewConsole(strings.NewReader(""), &bytes.Buffer{})

	_, ok, err := c.Prompt(context.Background(), "?")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsolePrompt_EmptyLineIsNotCancel(t *testing.T) {
	c := terminal.NewConsole(strings.NewReader("\n"), &bytes.Buffer{})

	text, ok, err := c.Prompt(context.Background(), "?")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, text)
}

func TestConsoleAlert_DoneContext(t *testing.T) {
	var out bytes.Buffer
	c := terminal.NewConsole(strings.NewReader(""), &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Alert(ctx, "hola")

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, out.String())
}

func TestAttach_SkipsMissingElements(t *testing.T) {
	c := terminal.NewConsole(strings.NewReader(""), &bytes.Buffer{}, deskButtons[0])
	called := 0
	bindings := []page.Binding{
		{ElementID: page.LauncherElementID, Handler: func(context.Context) { called++ }},
		{ElementID: page.ConverterElementID, Handler: func(context.Context) { called++ }},
	}

	assert.Equal(t, 1, page.Attach(c, bindings))
}

func TestServe_RequiresAttachedButtons(t *testing.T) {
	c := terminal.NewConsole(strings.NewReader("1\n"), &bytes.Buffer{}, deskButtons...)

	assert.Error(t, c.Serve(context.Background()))
}

func TestServe_DispatchesByIndexAndID(t *testing.T) {
	var out bytes.Buffer
	c := terminal.NewConsole(strings.NewReader("1\nconvManual\n9\nq\n"), &out, deskButtons...)
	var clicks []string
	page.Attach(c, []page.Binding{
		{ElementID: page.LauncherElementID, Handler: func(context.Context) { clicks = append(clicks, "xe") }},
		{ElementID: page.ConverterElementID, Handler: func(context.Context) { clicks = append(clicks, "manual") }},
	})

	require.NoError(t, c.Serve(context.Background()))

	assert.Equal(t, []string{"xe", "manual"}, clicks)
	assert.Contains(t, out.String(), "1) Conversor XE [convXE]")
	assert.Contains(t, out.String(), "Opción no válida")
}

func TestDeskFlowOverConsole(t *testing.T) {
	var out bytes.Buffer
	input := strings.Join([]string{
		"2", "100", // convert 100 EUR
		"2", "abc", // invalid amount
		"1", // open XE
		"",
	}, "\n")
	c := terminal.NewConsole(strings.NewReader(input), &out, deskButtons...)
	rates := &stubRates{quote: ports.RateQuote{Rate: 1.08, Found: true}}
	opener := &recordingOpener{}
	clip := &recordingClipboard{}

	container := services.NewServiceContainer(services.Hosts{
		Rates:     rates,
		Opener:    opener,
		Dialog:    c,
		Clipboard: clip,
	}, portsrepo.RepositoryProvider{})
	require.Equal(t, 2, page.Attach(c, page.DefaultBindings(container.Launcher, container.Converter)))

	require.NoError(t, c.Serve(context.Background()))

	assert.Contains(t, out.String(), "€100.00 = $108.00 USDT\n(Tasa: 1.0800)\n")
	assert.Contains(t, out.String(), "Cantidad inválida\n")
	assert.Equal(t, 1, rates.calls)
	assert.Equal(t, []string{"108.00 USDT"}, clip.texts)
	assert.Equal(t, []string{services.DefaultXEURL}, opener.urls)
}

package ingester_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symtab/internal/adapters/telemetry"
	"go.trai.ch/symtab/internal/adapters/tokenizer"
	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/symtab/internal/core/ports/mocks"
	"go.trai.ch/symtab/internal/engine/ingester"
	"go.uber.org/mock/gomock"
)

func defaultTokenizer() *tokenizer.Tokenizer {
	return tokenizer.New(domain.DefaultConfig().Tokenizer)
}

// expectSources makes sources serve each name from the given text.
func expectSources(sources *mocks.MockSourceReader, files map[string]string) {
	for name, text := range files {
		sources.EXPECT().Open(name).DoAndReturn(func(string) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(text)), nil
		})
	}
}

func TestIngester_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)
	expectSources(sources, map[string]string{
		"a.txt": "hello world\nhello again\n",
		"b.txt": "world peace",
	})

	table := domain.NewTable()
	ing := ingester.New(sources, defaultTokenizer(), telemetry.NewNoOpTracer())

	stats, err := ing.Run(context.Background(), table, []string{"a.txt", "b.txt"}, 2)
	require.NoError(t, err)

	assert.Equal(t, domain.IngestStats{Sources: 2, Lines: 3, Tokens: 6, Distinct: 4}, stats)
	for _, s := range []string{"hello world", "hello again", "world peace", "hello", "world", "again", "peace"} {
		assert.True(t, table.Contains(s), "missing %q", s)
	}
	assert.Equal(t, 7, table.Len())
}

func TestIngester_RunIntoExistingTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)
	expectSources(sources, map[string]string{"a.txt": "hello world"})

	table := domain.NewTable()
	hello := table.Intern("hello")

	stats, err := ingester.New(sources, defaultTokenizer(), telemetry.NewNoOpTracer()).
		Run(context.Background(), table, []string{"a.txt"}, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Distinct)
	got, ok := table.Lookup("hello")
	require.True(t, ok)
	assert.Equal(t, hello.Index(), got.Index(), "existing entries keep their index")
}

func TestIngester_NoSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	ing := ingester.New(mocks.NewMockSourceReader(ctrl), defaultTokenizer(), telemetry.NewNoOpTracer())

	_, err := ing.Run(context.Background(), domain.NewTable(), nil, 1)
	require.ErrorIs(t, err, domain.ErrNoSources)
}

func TestIngester_OpenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)
	sources.EXPECT().Open("missing.txt").Return(nil, domain.ErrSourceNotFound)

	ing := ingester.New(sources, defaultTokenizer(), telemetry.NewNoOpTracer())

	_, err := ing.Run(context.Background(), domain.NewTable(), []string{"missing.txt"}, 1)
	require.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestIngester_ReadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)
	sources.EXPECT().Open("broken.txt").Return(io.NopCloser(iotest.ErrReader(errors.New("disk gone"))), nil)

	ing := ingester.New(sources, defaultTokenizer(), telemetry.NewNoOpTracer())

	_, err := ing.Run(context.Background(), domain.NewTable(), []string{"broken.txt"}, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSourceReadFailed.Error())
	assert.ErrorContains(t, err, "disk gone")
}

func TestIngester_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)
	sources.EXPECT().Open(gomock.Any()).Return(io.NopCloser(strings.NewReader("hello\n")), nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ing := ingester.New(sources, defaultTokenizer(), telemetry.NewNoOpTracer())
	_, err := ing.Run(ctx, domain.NewTable(), []string{"a.txt"}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestIngester_Spans(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)
	expectSources(sources, map[string]string{"a.txt": "one two\nthree"})

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	tracer.EXPECT().Start(gomock.Any(), "ingest a.txt").Return(context.Background(), span)
	span.EXPECT().SetAttribute("lines", 2)
	span.EXPECT().SetAttribute("tokens", 3)
	span.EXPECT().End()

	_, err := ingester.New(sources, defaultTokenizer(), tracer).
		Run(context.Background(), domain.NewTable(), []string{"a.txt"}, 1)
	require.NoError(t, err)
}

func TestIngester_SpanRecordsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)
	sources.EXPECT().Open("a.txt").Return(nil, domain.ErrSourceNotFound)

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	tracer.EXPECT().Start(gomock.Any(), "ingest a.txt").Return(context.Background(), span)
	span.EXPECT().SetAttribute(gomock.Any(), 0).Times(2)
	span.EXPECT().RecordError(domain.ErrSourceNotFound)
	span.EXPECT().End()

	_, err := ingester.New(sources, defaultTokenizer(), tracer).
		Run(context.Background(), domain.NewTable(), []string{"a.txt"}, 1)
	require.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestIngester_ManySources(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)

	const n = 20
	files := make(map[string]string, n)
	names := make([]string, 0, n)
	for i := range n {
		name := fmt.Sprintf("src-%d.txt", i)
		files[name] = fmt.Sprintf("shared words here\nunique-%d\n", i)
		names = append(names, name)
	}
	expectSources(sources, files)

	table := domain.NewTable()
	stats, err := ingester.New(sources, defaultTokenizer(), telemetry.NewNoOpTracer()).
		Run(context.Background(), table, names, 4)
	require.NoError(t, err)

	assert.Equal(t, n, stats.Sources)
	assert.Equal(t, 2*n, stats.Lines)
	assert.Equal(t, 4*n, stats.Tokens)
	assert.Equal(t, 3+n, stats.Distinct)
	// "shared words here", its three words, and one "unique-i" line per source.
	assert.Equal(t, 4+n, table.Len())
}

func TestIngester_DefaultWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)
	expectSources(sources, map[string]string{"a.txt": "x"})

	stats, err := ingester.New(sources, defaultTokenizer(), telemetry.NewNoOpTracer()).
		Run(context.Background(), domain.NewTable(), []string{"a.txt"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Sources)
}

func TestIngester_RunDelegatesToTokenizer(t *testing.T) {
	ctrl := gomock.NewController(t)
	sources := mocks.NewMockSourceReader(ctrl)
	expectSources(sources, map[string]string{"a.txt": "alpha beta\ngamma\n"})

	tok := mocks.NewMockTokenizer(ctrl)
	gomock.InOrder(
		tok.EXPECT().Tokenize(gomock.Any(), "alpha beta").DoAndReturn(func(table *domain.Table, line string) []domain.Symbol {
			sym := table.Intern(line)
			first, _ := sym.Slice(0, 5)
			return []domain.Symbol{first}
		}),
		tok.EXPECT().Tokenize(gomock.Any(), "gamma").DoAndReturn(func(table *domain.Table, line string) []domain.Symbol {
			table.Intern(line)
			return nil
		}),
	)

	table := domain.NewTable()
	stats, err := ingester.New(sources, tok, telemetry.NewNoOpTracer()).Run(context.Background(), table, []string{"a.txt"}, 1)
	require.NoError(t, err)

	assert.Equal(t, domain.IngestStats{Sources: 1, Lines: 2, Tokens: 1, Distinct: 1}, stats)
	assert.True(t, table.Contains("alpha"))
	assert.False(t, table.Contains("beta"), "only tokens returned by the tokenizer are desliced")
}

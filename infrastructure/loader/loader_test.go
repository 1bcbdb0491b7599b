package loader

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/downloads-insights/pkg/log"
)

func writeDownloads(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "downloads.txt")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600)
	require.NoError(t, err)

	return path
}

func TestJSONLinesLoader_Load(t *testing.T) {
	log.SetupTestLogger(io.Discard)

	tests := []struct {
		name         string
		lines        []string
		wantShows    []string
		wantRejected []int
		validate     func(t *testing.T, result *Result)
	}{
		{
			name: "Linhas válidas com campos aninhados",
			lines: []string{
				`{"city":"San Francisco","deviceType":"mobiles & tablets","downloadIdentifier":{"showId":"Who Trolled Amber"},"opportunities":[{"originalEventTime":1590414188000,"positionUrlSegments":{"aw_0_ais.adBreakIndex":["preroll","midroll"]}}]}`,
				`{"city":"Denver","deviceType":"desktops & laptops","downloadIdentifier":{"showId":"Crime Junkie"},"opportunities":[]}`,
			},
			wantShows:    []string{"Who Trolled Amber", "Crime Junkie"},
			wantRejected: []int{},
			validate: func(t *testing.T, result *Result) {
				first := result.Records[0]
				assert.Equal(t, "San Francisco", first.City)
				assert.Equal(t, "mobiles & tablets", first.DeviceType)
				require.Len(t, first.Opportunities, 1)
				require.NotNil(t, first.Opportunities[0].OriginalEventTime)
				assert.Equal(t, int64(1590414188000), *first.Opportunities[0].OriginalEventTime)
				assert.Equal(t, []string{"preroll", "midroll"}, first.Opportunities[0].AdBreakIndexes())
				assert.Empty(t, result.Records[1].Opportunities)
			},
		},
		{
			name: "Linha malformada no meio não descarta as seguintes",
			lines: []string{
				`{"city":"a","deviceType":"d","downloadIdentifier":{"showId":"s1"}}`,
				`{"city": "b", "deviceType":`,
				`{"city":"c","deviceType":"d","downloadIdentifier":{"showId":"s2"}}`,
			},
			wantShows:    []string{"s1", "s2"},
			wantRejected: []int{2},
		},
		{
			name: "Linhas vazias são ignoradas sem rejeição",
			lines: []string{
				``,
				`{"downloadIdentifier":{"showId":"s1"}}`,
				`   `,
				`{"downloadIdentifier":{"showId":"s2"}}`,
				``,
			},
			wantShows:    []string{"s1", "s2"},
			wantRejected: []int{},
		},
		{
			name: "Download sem showId ou com showId nulo é rejeitado",
			lines: []string{
				`{"city":"a","downloadIdentifier":{}}`,
				`{"city":"a","downloadIdentifier":{"showId":"s1"}}`,
				`{"city":"a","downloadIdentifier":{"showId":null}}`,
				`{"city":"a"}`,
			},
			wantShows:    []string{"s1"},
			wantRejected: []int{1, 3, 4},
		},
		{
			name: "showId vazio é aceito como chave comum",
			lines: []string{
				`{"city":"a","downloadIdentifier":{"showId":""}}`,
			},
			wantShows:    []string{""},
			wantRejected: []int{},
		},
		{
			name: "Campos desconhecidos são ignorados e originalEventTime nulo vira nil",
			lines: []string{
				`{"city":"a","extra":{"nested":true},"downloadIdentifier":{"showId":"s1","podcastId":"p"},"opportunities":[{"originalEventTime":null,"positionUrlSegments":{}}]}`,
			},
			wantShows:    []string{"s1"},
			wantRejected: []int{},
			validate: func(t *testing.T, result *Result) {
				opportunity := result.Records[0].Opportunities[0]
				assert.Nil(t, opportunity.OriginalEventTime)
				assert.Empty(t, opportunity.AdBreakIndexes())
			},
		},
		{
			name: "Tipo incompatível com o formato é rejeitado",
			lines: []string{
				`{"city":"a","downloadIdentifier":{"showId":"s1"},"opportunities":[{"originalEventTime":"ontem"}]}`,
				`["not","an","object"]`,
			},
			wantShows:    []string{},
			wantRejected: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDownloads(t, tt.lines...)

			result, err := NewJSONLinesLoader().Load(context.Background(), path)
			require.NoError(t, err)
			require.NotNil(t, result)

			shows := make([]string, 0, len(result.Records))
			for _, record := range result.Records {
				shows = append(shows, record.ShowID())
			}
			assert.Equal(t, tt.wantShows, shows)

			rejected := make([]int, 0, len(result.Rejected))
			for _, lineErr := range result.Rejected {
				rejected = append(rejected, lineErr.Line)
			}
			assert.Equal(t, tt.wantRejected, rejected)

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestJSONLinesLoader_RejectedLineErrors(t *testing.T) {
	log.SetupTestLogger(io.Discard)

	path := writeDownloads(t,
		`{oops`,
		`{"downloadIdentifier":{"showId":null}}`,
	)

	result, err := NewJSONLinesLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, result.Rejected, 2)

	assert.True(t, errors.Is(result.Rejected[0], ErrDecodeLine))
	assert.True(t, errors.Is(result.Rejected[1], ErrMissingShowID))
	assert.Equal(t, "line 2: download without showId", result.Rejected[1].Error())
}

func TestJSONLinesLoader_MissingFile(t *testing.T) {
	log.SetupTestLogger(io.Discard)

	result, err := NewJSONLinesLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpenFile))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	require.NotNil(t, result)
	assert.Empty(t, result.Records)
}

func TestJSONLinesLoader_LineTooLong(t *testing.T) {
	log.SetupTestLogger(io.Discard)

	path := writeDownloads(t,
		`{"downloadIdentifier":{"showId":"s1"}}`,
		`{"city":"`+strings.Repeat("x", maxLineSize+10)+`"}`,
		`{"downloadIdentifier":{"showId":"s2"}}`,
		`{"downloadIdentifier":{"showId":"s3"}}`,
	)

	result, err := NewJSONLinesLoader().Load(context.Background(), path)
	require.NoError(t, err)

	shows := make([]string, 0, len(result.Records))
	for _, record := range result.Records {
		shows = append(shows, record.ShowID())
	}
	assert.Equal(t, []string{"s1", "s2", "s3"}, shows)

	require.Len(t, result.Rejected, 1)
	assert.Equal(t, 2, result.Rejected[0].Line)
	assert.True(t, errors.Is(result.Rejected[0], ErrLineTooLong))
}

func TestJSONLinesLoader_LineAtSizeLimit(t *testing.T) {
	log.SetupTestLogger(io.Discard)

	prefix := `{"downloadIdentifier":{"showId":"s1"},"city":"`
	suffix := `"}`
	line := prefix + strings.Repeat("x", maxLineSize-len(prefix)-len(suffix)) + suffix
	require.Len(t, line, maxLineSize)

	path := writeDownloads(t, line, `{"downloadIdentifier":{"showId":"s2"}}`)

	result, err := NewJSONLinesLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Empty(t, result.Rejected)
	assert.Len(t, result.Records[0].City, maxLineSize-len(prefix)-len(suffix))
}

func TestJSONLinesLoader_CanceledContext(t *testing.T) {
	log.SetupTestLogger(io.Discard)

	path := writeDownloads(t, `{"downloadIdentifier":{"showId":"s1"}}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewJSONLinesLoader().Load(ctx, path)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Records)
}

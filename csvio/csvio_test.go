package csvio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/csvio"
	"github.com/warp/finance-engine/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const sampleCSV = `id,date,account,debit,credit,description,currency,entry_type,category
e-1,2025-11-24,Cash,10,,Seed,USD,debit,capital
e-2,2025-11-24,Equity,,10,Seed,USD,credit,capital
`

func TestRead_SampleFile(t *testing.T) {
	entries, err := csvio.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "e-1", entries[0].ID)
	assert.Equal(t, "Cash", entries[0].Account)
	assert.True(t, entries[0].Debit.Equal(dec("10")))
	assert.True(t, entries[0].Credit.IsZero(), "blank credit parses as 0")
	assert.Equal(t, ledger.TypeCredit, entries[1].Type)

	f := ledger.NewFile("sample.csv", entries)
	assert.True(t, f.Imbalance().IsZero())
}

func TestRead_MinimalHeader(t *testing.T) {
	// GIVEN: A reduced header with the "timestamp" alias and no id column
	// THEN: Rows parse, defaults apply, ids are generated

	in := "timestamp,account,debit\n2025-11-24,Cash,42.50\n"
	entries, err := csvio.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.NotEmpty(t, entries[0].ID)
	assert.Equal(t, "USD", entries[0].Currency)
	assert.True(t, entries[0].Debit.Equal(dec("42.50")))
}

func TestRead_MalformedRowSurfacesValidationError(t *testing.T) {
	in := "date,account,debit\n2025-11-24,Cash,-5\n"
	_, err := csvio.Read(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrValidation)
	assert.Contains(t, err.Error(), "row 2")
}

func TestRead_EmptyInput(t *testing.T) {
	entries, err := csvio.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRoundTrip(t *testing.T) {
	// GIVEN: Entries written to the CSV format
	// WHEN: Reading them back
	// THEN: Field-for-field equal entries (modulo decimal formatting)

	original, err := csvio.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvio.Write(&buf, original))

	reread, err := csvio.Read(&buf)
	require.NoError(t, err)
	require.Len(t, reread, len(original))

	for i := range original {
		assert.Equal(t, original[i].ID, reread[i].ID)
		assert.Equal(t, original[i].Date, reread[i].Date)
		assert.Equal(t, original[i].Account, reread[i].Account)
		assert.True(t, original[i].Debit.Equal(reread[i].Debit))
		assert.True(t, original[i].Credit.Equal(reread[i].Credit))
		assert.Equal(t, original[i].Description, reread[i].Description)
		assert.Equal(t, original[i].Currency, reread[i].Currency)
		assert.Equal(t, original[i].Type, reread[i].Type)
		assert.Equal(t, original[i].Category, reread[i].Category)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte(sampleCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"),
		[]byte("date,account,debit\n2025-11-25,Cash,1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("not a ledger"), 0o644))

	files, err := csvio.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "a.csv", files[0].Name, "files load in sorted order")
	assert.Equal(t, "b.csv", files[1].Name)
	assert.Len(t, files[1].Entries, 2)
}

package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatXLSX, DetectFormat("leads.xlsx"))
	assert.Equal(t, FormatXLSX, DetectFormat("LEADS.XLS"))
	assert.Equal(t, FormatCSV, DetectFormat("leads.csv"))
	assert.Equal(t, FormatCSV, DetectFormat("leads.txt"))
	assert.Equal(t, FormatCSV, DetectFormat("leads"))
}

func TestReadCSVNormalizesHeaders(t *testing.T) {
	data := " Company_Name ,EMAIL,Phone,address\n" +
		"Acme, a@acme.io ,0123,1 Main St\n" +
		"\n" +
		"Globex,g@globex.io,0456,\n"

	table, err := Read("leads.csv", strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"company_name", "email", "phone", "address"}, table.Headers)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "Acme", table.Value(0, "company_name"))
	assert.Equal(t, "a@acme.io", table.Value(0, "email"))
	assert.Equal(t, "0123", table.Value(0, "phone"), "phone numbers stay strings")
	assert.Equal(t, "", table.Value(1, "address"))
	assert.Equal(t, "", table.Value(0, "missing"))
	assert.True(t, table.HasColumn("phone"))
	assert.False(t, table.HasColumn("contact"))
}

func TestReadCSVHeaderOnly(t *testing.T) {
	table, err := Read("leads.csv", strings.NewReader("company_name,email\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, table.Len())
	assert.True(t, table.HasColumn("email"))
}

func TestReadEmptyFile(t *testing.T) {
	_, err := Read("leads.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Company_Name", "Email", "Phone", "Address"},
		{"Acme", "a@acme.io", "0123", "1 Main St"},
		{"Globex", "g@globex.io", "0456"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := Read("upload.xlsx", &buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"company_name", "email", "phone", "address"}, table.Headers)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "Globex", table.Value(1, "company_name"))
	assert.Equal(t, "", table.Value(1, "address"))
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	_, err := Read("upload.xlsx", strings.NewReader("not a zip"))
	assert.ErrorContains(t, err, "decode spreadsheet")
}

func TestReadCSVDuplicateAndEmptyHeaders(t *testing.T) {
	data := "company_name,email,phone,Email,,\n" +
		"Acme,first@acme.io,0123,second@acme.io,x,\n"

	table, err := Read("leads.csv", strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"company_name", "email", "phone", "email", "", ""}, table.Headers)
	require.Equal(t, 1, table.Len())
	assert.True(t, table.HasColumn("email"))
	assert.Equal(t, "first@acme.io", table.Value(0, "email"), "first column with a header wins")
	assert.Equal(t, "0123", table.Value(0, "phone"))
	assert.False(t, table.HasColumn(""))
	assert.False(t, table.HasColumn("email_0"))
}

func TestReadCSVDropsBlankRows(t *testing.T) {
	data := "company_name,email,phone\n" +
		" , ,\n" +
		"Acme,a@acme.io,1\n" +
		",,\n"

	table, err := Read("leads.csv", strings.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Acme", table.Value(0, "company_name"))
	assert.Equal(t, "", table.Value(1, "company_name"))
}

func TestReadCSVOnlyBlankRows(t *testing.T) {
	table, err := Read("leads.csv", strings.NewReader("company_name,phone\n,\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, table.Len())
	assert.True(t, table.HasColumn("phone"))
}

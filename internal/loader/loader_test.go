package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t,
		"userID;fio;phone;login\n"+
			"1;Иванов Иван;+992900000001;ivanov\n"+
			"2;Петров Пётр;;petrov\n")

	rows, err := Load(path, ';')
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "1", rows[0].Get("userID"))
	assert.Equal(t, "Иванов Иван", rows[0].Get("fio"))
	assert.Equal(t, "petrov", rows[1].Get("login"))
	assert.Equal(t, "", rows[1].Get("phone"))
}

func TestLoadCSVShortRow(t *testing.T) {
	// Строка короче шапки дополняется пустыми значениями.
	path := writeTempCSV(t,
		"requestID;startDate;masterID\n"+
			"7;2023-06-06\n")

	rows, err := Load(path, ';')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "7", rows[0].Get("requestID"))
	assert.Equal(t, "", rows[0].Get("masterID"))
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := Load(path, ';')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "шапкой")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "нет-такого.csv"), ';')
	require.Error(t, err)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"message", "masterID", "requestID"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Готово к выдаче", 3, 7}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := Load(path, ';')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Готово к выдаче", rows[0].Get("message"))
	assert.Equal(t, "3", rows[0].Get("masterID"))
	assert.Equal(t, "7", rows[0].Get("requestID"))
}

func TestRowGetTrims(t *testing.T) {
	row := Row{"login": "  ivanov  "}
	assert.Equal(t, "ivanov", row.Get("login"))
	assert.Equal(t, "", row.Get("нет_такой_колонки"))
}

// Package loader читает табличные файлы выгрузок (CSV с разделителем или
// XLSX) в упорядоченный список строк с доступом к полям по имени колонки.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row — одна строка файла: имя колонки из шапки -> значение.
type Row map[string]string

func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Load выбирает формат по расширению файла. Первая строка файла — шапка,
// она обязательна. Короткие строки дополняются пустыми значениями,
// длинные усекаются до ширины шапки.
func Load(path string, delimiter rune) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadXLSX(path)
	}
	return loadCSV(path, delimiter)
}

func loadCSV(path string, delimiter rune) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("файл %s пуст: отсутствует строка с шапкой", path)
		}
		return nil, fmt.Errorf("ошибка чтения шапки файла %s: %w", path, err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения строки файла %s: %w", path, err)
		}
		rows = append(rows, buildRow(header, record))
	}
	return rows, nil
}

func loadXLSX(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("файл %s не содержит листов", path)
	}

	allRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %s: %w", sheets[0], err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("файл %s пуст: отсутствует строка с шапкой", path)
	}

	header := allRows[0]
	var rows []Row
	for _, record := range allRows[1:] {
		rows = append(rows, buildRow(header, record))
	}
	return rows, nil
}

func buildRow(header, record []string) Row {
	row := make(Row, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}
	return row
}

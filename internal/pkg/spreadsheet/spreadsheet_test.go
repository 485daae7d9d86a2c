package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ReadBack(t *testing.T) {
	data, err := Render(Sheet{
		Name:   "Rekap Absensi Juli",
		Header: []string{"Jurusan", "Nama", "1", "2", "Jumlah"},
		Rows: [][]interface{}{
			{"Teknik Informatika", "Dr. Siti Rahma", "KT", "", "KT:1"},
			{"Teknik Informatika", "Prof. Budi", "PK", "CT", "PK:1, CT:1"},
		},
		ColWidths: map[string]float64{"A": 25, "B": 30},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := Open(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Rekap Absensi Juli"}, wb.SheetNames())

	records, err := wb.Records("Rekap Absensi Juli", "Jurusan", "nama", "JUMLAH")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Dr. Siti Rahma", records[0]["nama"])
	assert.Equal(t, "KT", records[0]["1"])
	assert.Equal(t, "", records[0]["2"])
	assert.Equal(t, "PK:1, CT:1", records[1]["jumlah"])
}

func TestRender_MultipleSheets(t *testing.T) {
	data, err := Render(
		Sheet{Name: "data_akses", Header: []string{"nip", "nama_lengkap"}, Rows: [][]interface{}{{"198501012010011001", "Siti"}}},
		Sheet{Name: "BP", Header: []string{"nip", "tanggal"}},
	)
	require.NoError(t, err)

	wb, err := Open(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"data_akses", "BP"}, wb.SheetNames())

	users, err := wb.Records("data_akses")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "198501012010011001", users[0]["nip"])

	empty, err := wb.Records("BP")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRecords_Errors(t *testing.T) {
	data, err := Render(Sheet{Name: "BT", Header: []string{"nip"}})
	require.NoError(t, err)

	wb, err := Open(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.Records("THP")
	assert.ErrorIs(t, err, ErrSheetNotFound)

	_, err = wb.Records("BT", "tanggal")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestRender_NoSheets(t *testing.T) {
	_, err := Render()
	assert.Error(t, err)
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Sheet1"},
		{"  Rekap  ", "Rekap"},
		{"Rekap Absensi Dosen Bulan September 2025", "Rekap Absensi Dosen Bulan Septe"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sheetName(tt.in))
	}
}

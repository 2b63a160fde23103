package importer

import (
	"testing"

	"service-center-import/internal/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRecord(t *testing.T) {
	rec, ok := parseUserRecord(loader.Row{
		"userID": " 5 ", "fio": "Иванов", "phone": "+992900000001",
		"login": "ivanov", "password": "pw", "type": "Мастер",
	})
	require.True(t, ok)
	assert.Equal(t, int64(5), rec.UserID)
	assert.Equal(t, "ivanov", rec.Login)

	_, ok = parseUserRecord(loader.Row{"userID": "abc", "login": "ivanov"})
	assert.False(t, ok, "нечисловой userID делает строку непригодной")
}

func TestParseRequestRecord(t *testing.T) {
	rec, ok := parseRequestRecord(loader.Row{
		"requestID": "7", "startDate": "2023-06-06",
		"homeTechType": "Холодильник", "homeTechModel": "Атлант",
		"problemDescryption": "Не морозит", "requestStatus": "Новая заявка",
		"completionDate": "", "masterID": "3", "clientID": "", "repairParts": "реле",
	})
	require.True(t, ok)
	assert.Equal(t, int64(7), rec.RequestID)
	// Колонка с опечаткой problemDescryption — контракт легаси-файла.
	assert.Equal(t, "Не морозит", rec.ProblemDescription)
	require.True(t, rec.MasterID.Valid)
	assert.Equal(t, int64(3), rec.MasterID.Int64)
	assert.False(t, rec.ClientID.Valid)

	_, ok = parseRequestRecord(loader.Row{"requestID": ""})
	assert.False(t, ok)
}

func TestParseOptionalInt(t *testing.T) {
	assert.False(t, parseOptionalInt("").Valid)
	assert.False(t, parseOptionalInt("мусор").Valid)

	v := parseOptionalInt("12")
	require.True(t, v.Valid)
	assert.Equal(t, int64(12), v.Int64)
}

func TestIdentityMap(t *testing.T) {
	ids := NewIdentityMap()

	_, ok := ids.ResolveUser(1)
	assert.False(t, ok)

	ids.RegisterUser(1, 10)
	ids.RegisterRequest(7, 70)

	id, ok := ids.ResolveUser(1)
	require.True(t, ok)
	assert.Equal(t, int64(10), id)

	id, ok = ids.ResolveRequest(7)
	require.True(t, ok)
	assert.Equal(t, int64(70), id)

	assert.Equal(t, 1, ids.UserCount())
	assert.Equal(t, 1, ids.RequestCount())
}

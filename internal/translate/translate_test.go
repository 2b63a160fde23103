package translate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Новая заявка", StatusOpen},
		{"В процессе ремонта", StatusInProgress},
		{"Готова к выдаче", StatusCompleted},
		{"  Новая заявка  ", StatusOpen},
		{"Что-то неизвестное", StatusOpen},
		{"", StatusOpen},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MapStatus(c.in), "вход: %q", c.in)
	}
}

func TestMapRole(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Мастер", RoleSpecialist},
		{"Менеджер", RoleQualityManager},
		{"Оператор", RoleOperator},
		{"Директор", RoleSpecialist},
		{"", RoleSpecialist},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MapRole(c.in), "вход: %q", c.in)
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2023-06-06")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 6, 6, 0, 0, 0, 0, time.UTC), got)

	// Время суток всегда нулевое.
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())

	_, ok = ParseDate("")
	assert.False(t, ok)

	_, ok = ParseDate("06.06.2023")
	assert.False(t, ok, "дата в чужом формате должна считаться отсутствующей")

	_, ok = ParseDate("2023-13-40")
	assert.False(t, ok)
}

func TestHashPassword(t *testing.T) {
	// Известный SHA-256 дайджест строки "123456".
	const digest123456 = "8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92"

	assert.Equal(t, digest123456, HashPassword("123456", "123456"))

	// Пустой пароль заменяется на подстановку до хеширования.
	assert.Equal(t, digest123456, HashPassword("", "123456"))

	assert.Equal(t,
		"2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b",
		HashPassword("secret", "123456"))
}

package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// TestStorePutGet проверяет полный цикл записи и чтения значения
func TestStorePutGet(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	in := record{
		Name: "revision",
		Date: time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Put("cda_test", in))

	var out record
	require.NoError(t, store.Get("cda_test", &out))

	assert.Equal(t, in.Name, out.Name)
	// Даты сравниваются по значению момента времени, а не по указателю на локацию
	assert.True(t, in.Date.Equal(out.Date))
}

// TestStoreGetMissingKey проверяет чтение отсутствующего ключа
func TestStoreGetMissingKey(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var out record
	err = store.Get("cda_absent", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// TestStoreOverwrite проверяет, что повторная запись полностью заменяет значение
func TestStoreOverwrite(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("cda_test", []string{"a", "b", "c"}))
	require.NoError(t, store.Put("cda_test", []string{"x"}))

	var out []string
	require.NoError(t, store.Get("cda_test", &out))
	assert.Equal(t, []string{"x"}, out)
}

// TestStoreDelete проверяет удаление ключа и его идемпотентность
func TestStoreDelete(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("cda_test", record{Name: "gone"}))
	require.NoError(t, store.Delete("cda_test"))

	var out record
	assert.ErrorIs(t, store.Get("cda_test", &out), ErrKeyNotFound)

	// Повторное удаление не является ошибкой
	assert.NoError(t, store.Delete("cda_test"))
}

// TestStoreEmptyBasePath проверяет, что пустой путь отклоняется
func TestStoreEmptyBasePath(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

// Package importer — ядро миграции: сопоставление внешних идентификаторов
// внутренним, перевод словарей и синтез производных полей при переносе
// легаси-выгрузок в БД сервисного центра.
package importer

import "service-center-import/internal/dto"

// IdentityMap — соответствия внешних идентификаторов выгрузки внутренним
// id целевой БД, накопленные за один запуск импорта. Карта живёт только
// в памяти запуска: после коммита последней фазы состояние остаётся
// исключительно в БД.
type IdentityMap struct {
	users    map[int64]int64
	requests map[int64]int64
}

func NewIdentityMap() *IdentityMap {
	return &IdentityMap{
		users:    make(map[int64]int64),
		requests: make(map[int64]int64),
	}
}

func (m *IdentityMap) RegisterUser(externalID, internalID int64) {
	m.users[externalID] = internalID
}

func (m *IdentityMap) ResolveUser(externalID int64) (int64, bool) {
	id, ok := m.users[externalID]
	return id, ok
}

func (m *IdentityMap) RegisterRequest(externalID, internalID int64) {
	m.requests[externalID] = internalID
}

func (m *IdentityMap) ResolveRequest(externalID int64) (int64, bool) {
	id, ok := m.requests[externalID]
	return id, ok
}

func (m *IdentityMap) UserCount() int    { return len(m.users) }
func (m *IdentityMap) RequestCount() int { return len(m.requests) }

// ClientInfo — контактные данные клиента из файла пользователей.
// Заявки хранят имя и телефон клиента денормализованно, без внешнего ключа.
type ClientInfo struct {
	Fio   string
	Phone string
}

// BuildClientIndex строит индекс clientID -> контакты по всем строкам файла
// пользователей, включая строки без логина: клиент мог не получить учётную
// запись, но его контакты в заявках всё равно нужны.
func BuildClientIndex(records []dto.ExternalUserRecord) map[int64]ClientInfo {
	index := make(map[int64]ClientInfo, len(records))
	for _, rec := range records {
		index[rec.UserID] = ClientInfo{Fio: rec.Fio, Phone: rec.Phone}
	}
	return index
}

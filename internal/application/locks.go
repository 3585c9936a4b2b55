package app

import "sync"

// lockTable выдаёт мьютекс на пользователя для последовательной обработки
// его событий. Запись живёт, только пока замок кто-то держит или ждёт:
// освобождение последнего владельца убирает её из таблицы.
type lockTable struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[int64]*userLock)}
}

// Acquire блокирует пользователя и возвращает функцию освобождения
func (t *lockTable) Acquire(userID int64) func() {
	t.mu.Lock()
	l, ok := t.locks[userID]
	if !ok {
		l = &userLock{}
		t.locks[userID] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		t.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.locks, userID)
		}
		t.mu.Unlock()
	}
}

// Len возвращает число занятых записей
func (t *lockTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.locks)
}

package queue

import (
	"context"
	"sync"
)

// Repository две независимые FIFO-очереди в памяти: очередь записей и лист ожидания.
// Друг из друга они не выводятся, автоматического перевода из листа ожидания нет
type Repository struct {
	mu           sync.Mutex
	appointments fifo
	waiting      fifo
}

// NewRepository создает пустые очереди
func NewRepository() *Repository {
	return &Repository{}
}

// EnqueueAppointment ставит клиента в конец очереди записей и возвращает новую длину очереди
func (r *Repository) EnqueueAppointment(_ context.Context, customerName string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments.push(customerName)
	return r.appointments.len(), nil
}

func (r *Repository) PeekAppointment(_ context.Context) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.appointments.peek()
	return name, ok, nil
}

// DequeueAppointment извлекает голову очереди записей; remaining - длина после извлечения
func (r *Repository) DequeueAppointment(_ context.Context) (name string, ok bool, remaining int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok = r.appointments.pop()
	return name, ok, r.appointments.len(), nil
}

// CancelAppointment убирает из очереди записей последнее вхождение клиента
func (r *Repository) CancelAppointment(_ context.Context, customerName string) (removed bool, remaining int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed = r.appointments.removeLast(customerName)
	return removed, r.appointments.len(), nil
}

func (r *Repository) JoinWaitingList(_ context.Context, customerName string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waiting.push(customerName)
	return r.waiting.len(), nil
}

func (r *Repository) PeekWaitingList(_ context.Context) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.waiting.peek()
	return name, ok, nil
}

func (r *Repository) LeaveWaitingList(_ context.Context) (name string, ok bool, remaining int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok = r.waiting.pop()
	return name, ok, r.waiting.len(), nil
}

// Snapshot копии обеих очередей, снятые под одной блокировкой
func (r *Repository) Snapshot(_ context.Context) (appointments []string, waiting []string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appointments.list(), r.waiting.list(), nil
}

// fifo очередь на срезе со сдвигающейся головой
type fifo struct {
	items []string
	head  int
}

func (q *fifo) push(v string) {
	q.items = append(q.items, v)
}

func (q *fifo) peek() (string, bool) {
	if q.head >= len(q.items) {
		return "", false
	}
	return q.items[q.head], true
}

func (q *fifo) pop() (string, bool) {
	v, ok := q.peek()
	if !ok {
		return "", false
	}
	q.items[q.head] = ""
	q.head++
	// Когда голова ушла далеко, уплотняем срез
	if q.head > 64 && q.head*2 >= len(q.items) {
		q.items = append([]string(nil), q.items[q.head:]...)
		q.head = 0
	}
	return v, true
}

// removeLast удаляет самое позднее вхождение v, порядок остальных сохраняется
func (q *fifo) removeLast(v string) bool {
	for i := len(q.items) - 1; i >= q.head; i-- {
		if q.items[i] == v {
			copy(q.items[i:], q.items[i+1:])
			q.items[len(q.items)-1] = ""
			q.items = q.items[:len(q.items)-1]
			return true
		}
	}
	return false
}

func (q *fifo) list() []string {
	return append([]string{}, q.items[q.head:]...)
}

func (q *fifo) len() int {
	return len(q.items) - q.head
}

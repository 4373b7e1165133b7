// Package pricing содержит тарифную сетку абонементов: расчёт стоимости и даты
// окончания по базовой цене плана и выбранной длительности, а также правила,
// по которым абонемент считается действующим.
package pricing

import (
	"errors"
	"fmt"
	"time"
)

// Duration длительность абонемента в месяцах.
type Duration int

const (
	// OneMonth абонемент на один месяц.
	OneMonth Duration = 1
	// ThreeMonths абонемент на три месяца.
	ThreeMonths Duration = 3
	// SixMonths абонемент на полгода.
	SixMonths Duration = 6
	// OneYear абонемент на год.
	OneYear Duration = 12
)

// ErrUnknownDuration возвращается для длительности вне тарифной сетки.
var ErrUnknownDuration = errors.New("unknown membership duration")

// discounts множитель к цене за месяц для каждой длительности.
var discounts = map[Duration]float64{
	OneMonth:    1,
	ThreeMonths: 0.9,
	SixMonths:   0.8,
	OneYear:     0.7,
}

// Durations возвращает все допустимые длительности по возрастанию.
func Durations() []Duration {
	return []Duration{OneMonth, ThreeMonths, SixMonths, OneYear}
}

// Valid сообщает, входит ли длительность в тарифную сетку.
func (d Duration) Valid() bool {
	_, ok := discounts[d]
	return ok
}

// Months возвращает количество месяцев.
func (d Duration) Months() int {
	return int(d)
}

// Discount возвращает множитель цены для длительности (1 означает без скидки).
func (d Duration) Discount() float64 {
	return discounts[d]
}

func (d Duration) String() string {
	switch d {
	case OneMonth:
		return "1 month"
	case ThreeMonths:
		return "3 months"
	case SixMonths:
		return "6 months"
	case OneYear:
		return "1 year"
	default:
		return fmt.Sprintf("Duration(%d)", int(d))
	}
}

// Term рассчитанный срок действия и стоимость абонемента.
type Term struct {
	From time.Time
	To   time.Time
	Fee  float64
}

// Quote рассчитывает срок и стоимость абонемента, начинающегося в момент from.
//
// Стоимость: price за один месяц, price*3*0.9 за три, price*6*0.8 за шесть,
// price*12*0.7 за год.
func Quote(price float64, d Duration, from time.Time) (Term, error) {
	const op = "pricing.Quote"
	discount, ok := discounts[d]
	if !ok {
		return Term{}, fmt.Errorf("%s: %w: %d", op, ErrUnknownDuration, int(d))
	}
	fee := price
	if d != OneMonth {
		fee = price * float64(d.Months()) * discount
	}
	return Term{
		From: from,
		To:   AddMonths(from, d.Months()),
		Fee:  fee,
	}, nil
}

// IsActive сообщает, что срок ещё не истёк и продлевать абонемент нельзя.
// Граница строгая: абонемент, истекающий ровно сейчас, уже можно продлить.
func IsActive(to, now time.Time) bool {
	return to.After(now)
}

// BlocksPlanDeletion сообщает, что абонемент мешает удалению плана.
// Граница включительная: истекающий ровно сейчас абонемент ещё считается действующим.
func BlocksPlanDeletion(to, now time.Time) bool {
	return !to.Before(now)
}

// AddMonths прибавляет n календарных месяцев. Если в целевом месяце нет такого
// дня, берётся его последний день: 31 января + 1 месяц = 28 (29) февраля.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

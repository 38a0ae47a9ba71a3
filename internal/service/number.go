package service

import (
	"math/rand/v2"
	"strconv"
)

type OrderNumberGenerator interface {
	Next() string
}

type randomNumbers struct {
	min, max int
}

// NewRandomNumbers выдаёт номера из [min, max]. Уникальность не гарантируется,
// её обеспечивает ограничение в БД.
func NewRandomNumbers(min, max int) *randomNumbers {
	if max < min {
		min, max = max, min
	}
	return &randomNumbers{min: min, max: max}
}

// NewOrderNumbers - шестизначные номера, как их видит покупатель.
func NewOrderNumbers() *randomNumbers {
	return NewRandomNumbers(100000, 999999)
}

func (g *randomNumbers) Next() string {
	return strconv.Itoa(g.min + rand.IntN(g.max-g.min+1))
}

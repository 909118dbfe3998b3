package validation

import (
	"errors"
	"strconv"
	"time"
)

var ErrInvalidQuery = errors.New("invalid query parameter")

// Pagination bounds for list endpoints.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Getter reads a query parameter; *gin.Context.GetQuery satisfies it.
type Getter func(key string) (string, bool)

func QueryTime(get Getter, key string) (*time.Time, error) {
	value, ok := get(key)
	if !ok || value == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(value)
	if err != nil {
		return nil, ErrInvalidQuery
	}
	return &t, nil
}

// QueryDate reads a date parameter, defaulting to fallback when absent.
func QueryDate(get Getter, key string, fallback time.Time) (time.Time, error) {
	t, err := QueryTime(get, key)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return fallback, nil
	}
	return *t, nil
}

func QueryUint(get Getter, key string) (*uint64, error) {
	value, ok := get(key)
	if !ok || value == "" {
		return nil, nil
	}
	id, ok := ParseID(value)
	if !ok {
		return nil, ErrInvalidQuery
	}
	return &id, nil
}

func QueryBool(get Getter, key string) (*bool, error) {
	value, ok := get(key)
	if !ok || value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, ErrInvalidQuery
	}
	return &b, nil
}

func QueryInt(get Getter, key string, fallback, minValue, maxValue int) (int, error) {
	value, ok := get(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < minValue || n > maxValue {
		return 0, ErrInvalidQuery
	}
	return n, nil
}

// Pagination reads skip and limit.
func Pagination(get Getter) (skip, limit int, err error) {
	skip, err = QueryInt(get, "skip", 0, 0, int(^uint32(0)>>1))
	if err != nil {
		return 0, 0, err
	}
	limit, err = QueryInt(get, "limit", DefaultLimit, 1, MaxLimit)
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ItemID records the document identifier under the key "item_id".
func ItemID(id string) slog.Attr {
	return slog.String("item_id", id)
}

// Index records the index name under the key "index".
func Index(name string) slog.Attr {
	return slog.String("index", name)
}

// Operation records the store operation under the key "op".
func Operation(name string) slog.Attr {
	return slog.String("op", name)
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

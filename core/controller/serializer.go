package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StrictJSONSerializer rejects request bodies carrying unknown fields.
type StrictJSONSerializer struct{}

func (StrictJSONSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (StrictJSONSerializer) Deserialize(c echo.Context, i any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(i)
	if err == nil {
		return nil
	}

	var msg string
	switch e := err.(type) {
	case *json.UnmarshalTypeError:
		msg = fmt.Sprintf("Invalid value for field %s", e.Field)
	case *json.SyntaxError:
		msg = "Malformed JSON"
	default:
		msg = err.Error()
	}
	return echo.NewHTTPError(http.StatusBadRequest, msg).SetInternal(err)
}

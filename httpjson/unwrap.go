package httpjson

import (
	"encoding/json"
	"fmt"

	"github.com/programme-lv/console/apierr"
)

// Unwrap decodes a response body and strips whatever envelope it uses.
//
// The two backends wrap payloads differently and neither is consistent
// across endpoints, so the convention is sniffed per body instead of
// assumed globally:
//
//   - an "error" key means the legacy convention: error null is success,
//     a non-null error is a failure whose description lives either in the
//     error string or, when data is a string, in data;
//   - a "success" or "status" key means the modern convention: payload in
//     data, failure message in message;
//   - anything else is an unwrapped payload and passes through as-is.
//
// Failures are returned as *apierr.Error with code request_failed.
func Unwrap(body []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return UnwrapValue(raw)
}

// UnwrapValue is Unwrap for an already-decoded value.
func UnwrapValue(raw any) (any, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return raw, nil
	}

	if errVal, present := obj["error"]; present {
		if errVal == nil {
			return obj["data"], nil
		}
		errStr, _ := errVal.(string)
		if desc, ok := obj["data"].(string); ok && desc != "" {
			return nil, apierr.ErrRequestFailed(desc)
		}
		return nil, apierr.ErrRequestFailed(errStr)
	}

	if succVal, present := obj["success"]; present {
		if succ, _ := succVal.(bool); succ {
			return obj["data"], nil
		}
		msg, _ := obj["message"].(string)
		return nil, apierr.ErrRequestFailed(msg)
	}

	if statusVal, present := obj["status"]; present {
		if status, _ := statusVal.(string); status == "success" {
			return obj["data"], nil
		}
		msg, _ := obj["message"].(string)
		return nil, apierr.ErrRequestFailed(msg)
	}

	return raw, nil
}

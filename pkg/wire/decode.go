package wire

import (
	"fmt"

	"github.com/clbanning/mxj/v2"
)

// resultKey is the element name the provider wraps each record in.
const resultKey = "result"

// DecodePage parses one raw page payload for the given endpoint and
// returns its records in document order.
//
// The payload's root element must be named after the endpoint. A missing
// root key, a missing result key, or an empty result element all decode
// to an empty page; those are the provider's normal end-of-data shapes,
// not errors. Malformed XML and result entries that are not mappings are
// reported as errors.
func DecodePage(data []byte, endpoint string) ([]Record, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s page: %w", endpoint, err)
	}

	root, ok := m[endpoint].(map[string]interface{})
	if !ok {
		return nil, nil
	}

	switch result := root[resultKey].(type) {
	case nil:
		return nil, nil
	case string:
		// <result/> decodes to an empty string; the provider uses it
		// interchangeably with omitting the element.
		if result == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("decode %s page: scalar result %q", endpoint, result)
	case map[string]interface{}:
		return []Record{Record(result)}, nil
	case []interface{}:
		records := make([]Record, 0, len(result))
		for i, entry := range result {
			rec, ok := entry.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("decode %s page: result %d is %T, want mapping", endpoint, i, entry)
			}
			records = append(records, Record(rec))
		}
		return records, nil
	default:
		return nil, fmt.Errorf("decode %s page: unexpected result type %T", endpoint, result)
	}
}

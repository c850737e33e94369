package supplier

// Request is the uniform envelope dispatched to suppliers: an operation
// selector and a schemaless parameter payload. Requests are treated as
// immutable once constructed; groups clone them per member.
type Request struct {
	Operation Operation `json:"operation"`
	Params    any       `json:"params"`
}

// Response carries the schemaless payload a supplier returns on success.
type Response struct {
	Data any `json:"data"`
}

// Clone returns a request whose params share no structure with the
// receiver, so one supplier's handling cannot observably affect another
// supplier's view of the same request.
func (r Request) Clone() Request {
	return Request{Operation: r.Operation, Params: cloneValue(r.Params)}
}

// cloneValue deep-copies decoded-JSON shapes. Scalars are immutable and
// returned as-is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(val))
		for k, item := range val {
			cp[k] = cloneValue(item)
		}
		return cp
	case []any:
		cp := make([]any, len(val))
		for i, item := range val {
			cp[i] = cloneValue(item)
		}
		return cp
	default:
		return v
	}
}

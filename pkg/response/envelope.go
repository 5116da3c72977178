package response

// Kind enumerates the closed set of request outcomes.
type Kind int

const (
	KindSuccess Kind = iota
	KindInvalidAccountOrPassword
	KindTokenExpired
	KindPermissionDenied
	KindGoodsNotFound
	KindInvalidInput
	KindServerError
)

// String returns the kind's name, used as the default envelope message.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindInvalidAccountOrPassword:
		return "InvalidAccountOrPassword"
	case KindTokenExpired:
		return "TokenExpired"
	case KindPermissionDenied:
		return "PermissionDenied"
	case KindGoodsNotFound:
		return "GoodsNotFound"
	case KindInvalidInput:
		return "InvalidInput"
	default:
		return "ServerError"
	}
}

// Code returns the wire code for the kind. Unknown kinds map to the server
// error code.
func (k Kind) Code() string {
	switch k {
	case KindSuccess:
		return "200"
	case KindInvalidAccountOrPassword:
		return "401"
	case KindTokenExpired:
		return "402"
	case KindPermissionDenied:
		return "403"
	case KindGoodsNotFound:
		return "404"
	case KindInvalidInput:
		return "405"
	default:
		return "500"
	}
}

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// New maps an outcome kind to its envelope. An empty message defaults to
// the kind name; nil data defaults to an empty object.
func New(k Kind, message string, data any) Envelope {
	if message == "" {
		message = k.String()
	}
	if data == nil {
		data = map[string]any{}
	}
	return Envelope{
		Success: k == KindSuccess,
		Code:    k.Code(),
		Message: message,
		Data:    data,
	}
}

// OK builds a success envelope around the payload.
func OK(data any) Envelope {
	return New(KindSuccess, "", data)
}

// Fail builds a failure envelope for the kind.
func Fail(k Kind) Envelope {
	return New(k, "", nil)
}

// FailMessage builds a failure envelope with an explicit message.
func FailMessage(k Kind, message string) Envelope {
	return New(k, message, nil)
}

// Package soap translates between SOAP 1.1 envelopes and the six ERP
// operations. Dispatch parses the Body's first child element and matches its
// local name exactly; qualified-name parsing replaced an earlier substring
// scan that could misdispatch on incidental text.
package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Namespace qualifies the operation parameters and response elements.
const Namespace = "http://erpsystem.local/soap"

// Operation identifies one of the supported SOAP operations.
type Operation int

const (
	OpUnknown Operation = iota
	OpAddCustomer
	OpGetCustomers
	OpAddProduct
	OpGetProducts
	OpCreateOrder
	OpGetOrders
)

// opInfo binds an operation to its request element and the tag its response
// payload is carried in.
type opInfo struct {
	name      string
	resultTag string
}

var operations = map[Operation]opInfo{
	OpAddCustomer:  {name: "AddCustomer", resultTag: "result"},
	OpGetCustomers: {name: "GetCustomers", resultTag: "customers"},
	OpAddProduct:   {name: "AddProduct", resultTag: "result"},
	OpGetProducts:  {name: "GetProducts", resultTag: "products"},
	OpCreateOrder:  {name: "CreateOrder", resultTag: "result"},
	OpGetOrders:    {name: "GetOrders", resultTag: "orders"},
}

// String returns the operation's request element name.
func (op Operation) String() string {
	if info, ok := operations[op]; ok {
		return info.name
	}
	return "Unknown"
}

// ErrMalformed marks requests whose envelope cannot be parsed or whose
// parameters are missing or not coercible. Handlers convert it into a client
// fault instead of failing the server.
var ErrMalformed = errors.New("malformed SOAP request")

type envelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Elements []element `xml:",any"`
	} `xml:"Body"`
}

type element struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []element `xml:",any"`
}

// Request is a decoded SOAP call: the requested operation plus its
// parameters, keyed by local element name.
type Request struct {
	Op     Operation
	params map[string]string
}

// DecodeRequest parses a SOAP envelope and identifies the requested
// operation from the local name of the Body's first child element. An
// element name outside the six known operations yields Op == OpUnknown, not
// an error; the caller answers with an unknown-operation fault.
func DecodeRequest(data []byte) (*Request, error) {
	var env envelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(env.Body.Elements) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformed)
	}

	call := env.Body.Elements[0]
	req := &Request{
		Op:     operationByName(call.XMLName.Local),
		params: make(map[string]string),
	}
	collectParams(call.Children, req.params)
	return req, nil
}

func operationByName(local string) Operation {
	for op, info := range operations {
		if info.name == local {
			return op
		}
	}
	return OpUnknown
}

// collectParams records the text of every descendant element in the service
// namespace. Later occurrences of a name win, matching a last-match lookup.
func collectParams(elements []element, params map[string]string) {
	for _, el := range elements {
		if el.XMLName.Space == Namespace {
			params[el.XMLName.Local] = strings.TrimSpace(el.Text)
		}
		collectParams(el.Children, params)
	}
}

// String returns the named parameter's text content.
func (r *Request) String(name string) (string, error) {
	value, ok := r.params[name]
	if !ok {
		return "", fmt.Errorf("%w: missing element <%s>", ErrMalformed, name)
	}
	return value, nil
}

// Int returns the named parameter coerced to an integer.
func (r *Request) Int(name string) (int, error) {
	value, err := r.String(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: element <%s> is not an integer: %q", ErrMalformed, name, value)
	}
	return n, nil
}

// Float returns the named parameter coerced to a float.
func (r *Request) Float(name string) (float64, error) {
	value, err := r.String(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: element <%s> is not a number: %q", ErrMalformed, name, value)
	}
	return f, nil
}

// EncodeResponse wraps an operation's serialized result in its response
// element inside a standard envelope. The payload is XML-escaped so markup
// characters in embedded strings cannot corrupt the document.
func EncodeResponse(op Operation, payload string) string {
	info := operations[op]
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
    <soap:Body>
        <%[1]sResponse xmlns="%[2]s">
            <%[3]s>%[4]s</%[3]s>
        </%[1]sResponse>
    </soap:Body>
</soap:Envelope>`, info.name, Namespace, info.resultTag, escapeText(payload))
}

// Fault codes used by the endpoint.
const (
	FaultCodeServer         = "Server"
	FaultCodeClient         = "Client"
	FaultCodeAuthentication = "Server.Authentication"
)

// EncodeFault renders a SOAP fault envelope.
func EncodeFault(code, message string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
    <soap:Body>
        <soap:Fault>
            <faultcode>%s</faultcode>
            <faultstring>%s</faultstring>
        </soap:Fault>
    </soap:Body>
</soap:Envelope>`, escapeText(code), escapeText(message))
}

// AuthenticationFault is the fault returned before any dispatch when the
// request carries no valid credentials.
func AuthenticationFault() string {
	return EncodeFault(FaultCodeAuthentication, "Authentication required. Please provide valid credentials.")
}

// UnknownOperationFault is the fault returned when the Body's child element
// names none of the six operations.
func UnknownOperationFault() string {
	return EncodeFault(FaultCodeServer, "Unknown operation")
}

func escapeText(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

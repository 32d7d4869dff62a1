package soap_test

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"erp/internal/soap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(body string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
    <soap:Body>` + body + `</soap:Body>
</soap:Envelope>`)
}

func TestDecodeRequest_DispatchesOnBodyElement(t *testing.T) {
	req, err := soap.DecodeRequest(envelope(
		`<AddCustomer xmlns="http://erpsystem.local/soap">
            <name>Alice</name>
            <email>alice@example.com</email>
            <phone>123</phone>
        </AddCustomer>`))
	require.NoError(t, err)
	assert.Equal(t, soap.OpAddCustomer, req.Op)

	name, err := req.String("name")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)
	email, err := req.String("email")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
	phone, err := req.String("phone")
	require.NoError(t, err)
	assert.Equal(t, "123", phone)
}

func TestDecodeRequest_PrefixedNamespace(t *testing.T) {
	req, err := soap.DecodeRequest(envelope(
		`<tns:CreateOrder xmlns:tns="http://erpsystem.local/soap">
            <tns:customer_id>1</tns:customer_id>
            <tns:product_id>2</tns:product_id>
            <tns:quantity>3</tns:quantity>
        </tns:CreateOrder>`))
	require.NoError(t, err)
	assert.Equal(t, soap.OpCreateOrder, req.Op)

	id, err := req.Int("product_id")
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

// An operation name buried in unrelated element text must not win the
// dispatch; only the Body's own child element counts.
func TestDecodeRequest_IgnoresIncidentalOperationNames(t *testing.T) {
	req, err := soap.DecodeRequest(envelope(
		`<AddCustomer xmlns="http://erpsystem.local/soap">
            <name>GetCustomers CreateOrder</name>
            <email>e@x.com</email>
            <phone>1</phone>
        </AddCustomer>`))
	require.NoError(t, err)
	assert.Equal(t, soap.OpAddCustomer, req.Op)
}

func TestDecodeRequest_UnknownOperation(t *testing.T) {
	req, err := soap.DecodeRequest(envelope(
		`<DeleteEverything xmlns="http://erpsystem.local/soap"/>`))
	require.NoError(t, err)
	assert.Equal(t, soap.OpUnknown, req.Op)
}

func TestDecodeRequest_MalformedXML(t *testing.T) {
	_, err := soap.DecodeRequest([]byte(`<soap:Envelope><soap:Body><AddCust`))
	assert.True(t, errors.Is(err, soap.ErrMalformed))
}

func TestDecodeRequest_EmptyBody(t *testing.T) {
	_, err := soap.DecodeRequest(envelope(``))
	assert.True(t, errors.Is(err, soap.ErrMalformed))
}

func TestRequest_ParameterCoercion(t *testing.T) {
	req, err := soap.DecodeRequest(envelope(
		`<AddProduct xmlns="http://erpsystem.local/soap">
            <name>Widget</name>
            <sku>W-1</sku>
            <price>19.99</price>
            <stock>42</stock>
        </AddProduct>`))
	require.NoError(t, err)

	price, err := req.Float("price")
	require.NoError(t, err)
	assert.InDelta(t, 19.99, price, 0.0001)

	stock, err := req.Int("stock")
	require.NoError(t, err)
	assert.Equal(t, 42, stock)
}

func TestRequest_MissingParameter(t *testing.T) {
	req, err := soap.DecodeRequest(envelope(
		`<AddProduct xmlns="http://erpsystem.local/soap">
            <name>Widget</name>
        </AddProduct>`))
	require.NoError(t, err)

	_, err = req.String("sku")
	assert.True(t, errors.Is(err, soap.ErrMalformed))
	assert.Contains(t, err.Error(), "sku")
}

func TestRequest_NonCoercibleParameter(t *testing.T) {
	req, err := soap.DecodeRequest(envelope(
		`<CreateOrder xmlns="http://erpsystem.local/soap">
            <customer_id>abc</customer_id>
            <product_id>1.5</product_id>
            <quantity>x</quantity>
        </CreateOrder>`))
	require.NoError(t, err)

	_, err = req.Int("customer_id")
	assert.True(t, errors.Is(err, soap.ErrMalformed))
	_, err = req.Int("product_id")
	assert.True(t, errors.Is(err, soap.ErrMalformed))
}

// Parameters outside the service namespace are invisible.
func TestRequest_NamespaceRequired(t *testing.T) {
	req, err := soap.DecodeRequest(envelope(
		`<AddCustomer xmlns="http://erpsystem.local/soap">
            <name xmlns="">Alice</name>
        </AddCustomer>`))
	require.NoError(t, err)

	_, err = req.String("name")
	assert.True(t, errors.Is(err, soap.ErrMalformed))
}

// responseEnvelope mirrors the rendered response shape for round-tripping.
type responseEnvelope struct {
	Body struct {
		Response struct {
			XMLName   xml.Name
			Result    string `xml:"result"`
			Customers string `xml:"customers"`
		} `xml:",any"`
	} `xml:"Body"`
}

func TestEncodeResponse_RoundTripsEscapedPayload(t *testing.T) {
	payload := `{"status":"success","id":1,"message":"Customer <Müller & Söhne> added"}`
	rendered := soap.EncodeResponse(soap.OpAddCustomer, payload)

	// The embedded markup characters must be escaped in the raw document.
	assert.NotContains(t, rendered, "<Müller")
	assert.Contains(t, rendered, "AddCustomerResponse")

	// And the document must parse back to the exact payload.
	var env responseEnvelope
	require.NoError(t, xml.Unmarshal([]byte(rendered), &env))
	assert.Equal(t, "AddCustomerResponse", env.Body.Response.XMLName.Local)
	assert.Equal(t, payload, env.Body.Response.Result)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(env.Body.Response.Result), &decoded))
	assert.Equal(t, "success", decoded["status"])
}

func TestEncodeResponse_ListTag(t *testing.T) {
	rendered := soap.EncodeResponse(soap.OpGetCustomers, `[{"id":1}]`)

	var env responseEnvelope
	require.NoError(t, xml.Unmarshal([]byte(rendered), &env))
	assert.Equal(t, "GetCustomersResponse", env.Body.Response.XMLName.Local)
	assert.Equal(t, `[{"id":1}]`, env.Body.Response.Customers)
}

type faultEnvelope struct {
	Body struct {
		Fault struct {
			Code   string `xml:"faultcode"`
			String string `xml:"faultstring"`
		} `xml:"Fault"`
	} `xml:"Body"`
}

func TestEncodeFault(t *testing.T) {
	rendered := soap.EncodeFault(soap.FaultCodeClient, `bad element <quantity>`)

	var env faultEnvelope
	require.NoError(t, xml.Unmarshal([]byte(rendered), &env))
	assert.Equal(t, soap.FaultCodeClient, env.Body.Fault.Code)
	assert.Equal(t, "bad element <quantity>", env.Body.Fault.String)
}

func TestAuthenticationFault(t *testing.T) {
	rendered := soap.AuthenticationFault()

	var env faultEnvelope
	require.NoError(t, xml.Unmarshal([]byte(rendered), &env))
	assert.Equal(t, soap.FaultCodeAuthentication, env.Body.Fault.Code)
	assert.Contains(t, env.Body.Fault.String, "Authentication required")
}

func TestUnknownOperationFault(t *testing.T) {
	rendered := soap.UnknownOperationFault()

	var env faultEnvelope
	require.NoError(t, xml.Unmarshal([]byte(rendered), &env))
	assert.Equal(t, soap.FaultCodeServer, env.Body.Fault.Code)
	assert.Equal(t, "Unknown operation", env.Body.Fault.String)
}

func TestWSDL_DescribesAllOperations(t *testing.T) {
	for _, op := range []string{"AddCustomer", "GetCustomers", "AddProduct", "GetProducts", "CreateOrder", "GetOrders"} {
		assert.True(t, strings.Contains(soap.WSDL, `<operation name="`+op+`">`), "WSDL missing %s", op)
	}
	assert.Contains(t, soap.WSDL, soap.Namespace)
	assert.Contains(t, soap.WSDL, `name="ERPService"`)
}

// Command soapclient pushes a customer and a follow-up order to a remote 4D
// SOAP service. It is a linear two-call client: save the customer, read the
// generated customer id out of the response, save an order referencing it.
// Any failure is fatal; there is no retry.
package main

import (
	"bytes"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	remoteNamespace    = "http://www.4d.com/namespace/default"
	saveCustomerAction = "A_WebService#ws_wes_kunde_save"
	saveOrderAction    = "A_WebService#ws_wes_order_save"
	requestTimeout     = 30 * time.Second
)

const customerEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope
    xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xmlns:tns="http://www.4d.com/namespace/default"
    SOAP-ENV:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
  <SOAP-ENV:Body>
    <tns:ws_wes_kunde_save>
      <betrieb_id xsi:type="xsd:int">1</betrieb_id>
      <kunde_anrede xsi:type="xsd:string">Herr</kunde_anrede>
      <kunde_vorname xsi:type="xsd:string">%s</kunde_vorname>
      <kunde_nachname xsi:type="xsd:string">%s</kunde_nachname>
      <kunde_firmenname xsi:type="xsd:string">%s</kunde_firmenname>
      <kunde_strasse_nr xsi:type="xsd:string">Beispielweg 1</kunde_strasse_nr>
      <kunde_plz xsi:type="xsd:string">12345</kunde_plz>
      <kunde_ort xsi:type="xsd:string">Musterstadt</kunde_ort>
      <kunde_land xsi:type="xsd:string">Deutschland</kunde_land>
      <kunde_land_iso xsi:type="xsd:string">DE</kunde_land_iso>
      <kunde_telefon xsi:type="xsd:string">%s</kunde_telefon>
      <kunde_email xsi:type="xsd:string">%s</kunde_email>
      <kunde_id_input xsi:type="xsd:int" xsi:nil="true"/>
      <kontakt_id_input xsi:type="xsd:int" xsi:nil="true"/>
      <kunde_is_disabled xsi:type="xsd:boolean">false</kunde_is_disabled>
      <webshop_identification xsi:type="xsd:string">Shopify</webshop_identification>
      <optional_data xsi:type="tns:ArrayOfstring" xsi:nil="true"/>
    </tns:ws_wes_kunde_save>
  </SOAP-ENV:Body>
</SOAP-ENV:Envelope>`

const orderEnvelope = `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope
    xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xmlns:tns="http://www.4d.com/namespace/default"
    SOAP-ENV:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
  <SOAP-ENV:Body>
    <tns:ws_wes_order_save>
      <betrieb_id xsi:type="xsd:int">1</betrieb_id>
      <kunde_id xsi:type="xsd:int">%s</kunde_id>
      <order_date xsi:type="xsd:string">%s</order_date>
      <order_total xsi:type="xsd:decimal">%.2f</order_total>
    </tns:ws_wes_order_save>
  </SOAP-ENV:Body>
</SOAP-ENV:Envelope>`

func main() {
	viper.SetDefault("SOAP_ENDPOINT", "")
	viper.SetDefault("SOAP_USERNAME", "")
	viper.SetDefault("SOAP_PASSWORD", "")
	viper.SetDefault("SOAP_SKIP_TLS_VERIFY", false)
	viper.SetDefault("CUSTOMER_FIRST_NAME", "Alice")
	viper.SetDefault("CUSTOMER_LAST_NAME", "Beispiel")
	viper.SetDefault("CUSTOMER_COMPANY", "Example GmbH")
	viper.SetDefault("CUSTOMER_PHONE", "+49 111 2222")
	viper.SetDefault("CUSTOMER_EMAIL", "alice.beispiel@example.test")
	viper.SetDefault("ORDER_TOTAL", 99.99)
	viper.AutomaticEnv()

	endpoint := viper.GetString("SOAP_ENDPOINT")
	username := viper.GetString("SOAP_USERNAME")
	password := viper.GetString("SOAP_PASSWORD")
	if endpoint == "" || username == "" || password == "" {
		log.Fatalf("SOAP_ENDPOINT, SOAP_USERNAME and SOAP_PASSWORD must be set")
	}

	client := &http.Client{Timeout: requestTimeout}
	if viper.GetBool("SOAP_SKIP_TLS_VERIFY") {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	log.Printf("endpoint: %s", endpoint)

	customerXML := fmt.Sprintf(customerEnvelope,
		escapeXML(viper.GetString("CUSTOMER_FIRST_NAME")),
		escapeXML(viper.GetString("CUSTOMER_LAST_NAME")),
		escapeXML(viper.GetString("CUSTOMER_COMPANY")),
		escapeXML(viper.GetString("CUSTOMER_PHONE")),
		escapeXML(viper.GetString("CUSTOMER_EMAIL")),
	)

	status, body, err := post(client, endpoint, saveCustomerAction, customerXML, username, password)
	if err != nil {
		log.Fatalf("Customer save failed: %v", err)
	}
	log.Printf("customer save: HTTP %d", status)
	fmt.Println(body)

	customerID, ok := findElementText(body, "kunde_id")
	if !ok {
		log.Fatalf("Customer id not found in response; cannot proceed with order creation")
	}
	log.Printf("customer id: %s", customerID)

	orderXML := fmt.Sprintf(orderEnvelope,
		escapeXML(customerID),
		time.Now().Format("2006-01-02"),
		viper.GetFloat64("ORDER_TOTAL"),
	)

	status, body, err = post(client, endpoint, saveOrderAction, orderXML, username, password)
	if err != nil {
		log.Fatalf("Order save failed: %v", err)
	}
	log.Printf("order save: HTTP %d", status)
	fmt.Println(body)
}

// post sends one SOAP envelope with Basic credentials and returns the raw
// response body.
func post(client *http.Client, endpoint, action, envelope, username, password string) (int, string, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(envelope))
	if err != nil {
		return 0, "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", action)
	req.SetBasicAuth(username, password)

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, string(body), nil
}

// findElementText scans a response document for the first element with the
// given local name in the remote namespace and returns its text content.
func findElementText(doc, local string) (string, bool) {
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", false
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != local || se.Name.Space != remoteNamespace {
			continue
		}
		var text string
		if err := dec.DecodeElement(&text, &se); err != nil {
			return "", false
		}
		return strings.TrimSpace(text), true
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

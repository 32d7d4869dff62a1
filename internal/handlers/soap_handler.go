package handlers

import (
	"log"

	"erp/internal/middleware"
	"erp/internal/models"
	"erp/internal/services"
	"erp/internal/soap"

	"github.com/gofiber/fiber/v2"
)

// SOAPHandler adapts SOAP envelopes on /soap into service calls and serves
// the static WSDL document.
type SOAPHandler struct {
	verifier        services.CredentialVerifier
	customerService *services.CustomerService
	productService  *services.ProductService
	orderService    *services.OrderService
}

// NewSOAPHandler creates a new SOAPHandler.
func NewSOAPHandler(verifier services.CredentialVerifier, customerService *services.CustomerService, productService *services.ProductService, orderService *services.OrderService) *SOAPHandler {
	return &SOAPHandler{
		verifier:        verifier,
		customerService: customerService,
		productService:  productService,
		orderService:    orderService,
	}
}

// RegisterRoutes registers the SOAP endpoint and the WSDL document.
func (h *SOAPHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/soap", h.HandleSOAP)
	router.Get("/wsdl", h.HandleWSDL)
}

// HandleWSDL serves the service description.
func (h *SOAPHandler) HandleWSDL(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/xml")
	return c.SendString(soap.WSDL)
}

// HandleSOAP authenticates the caller, decodes the envelope and dispatches
// it. Authentication is checked before anything else; a failed check answers
// with a fault envelope and touches no state.
func (h *SOAPHandler) HandleSOAP(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/xml")

	username, password, ok := middleware.ParseBasicAuth(c.Get(fiber.HeaderAuthorization))
	if !ok || !h.verifier.Verify(username, password) {
		c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="SOAP API"`)
		return c.Status(fiber.StatusUnauthorized).SendString(soap.AuthenticationFault())
	}

	req, err := soap.DecodeRequest(c.Body())
	if err != nil {
		log.Printf("Rejecting SOAP request from %q: %v", username, err)
		return c.Status(fiber.StatusBadRequest).SendString(soap.EncodeFault(soap.FaultCodeClient, err.Error()))
	}
	if req.Op == soap.OpUnknown {
		return c.SendString(soap.UnknownOperationFault())
	}

	payload, err := h.dispatch(req)
	if err != nil {
		// Only parameter extraction errors land here; domain and store
		// failures are serialized into the payload itself.
		log.Printf("Rejecting SOAP %s request from %q: %v", req.Op, username, err)
		return c.Status(fiber.StatusBadRequest).SendString(soap.EncodeFault(soap.FaultCodeClient, err.Error()))
	}
	return c.SendString(soap.EncodeResponse(req.Op, payload))
}

// dispatch runs the service call for a decoded request and returns the JSON
// payload to embed in the response envelope.
func (h *SOAPHandler) dispatch(req *soap.Request) (string, error) {
	switch req.Op {
	case soap.OpAddCustomer:
		name, err := req.String("name")
		if err != nil {
			return "", err
		}
		email, err := req.String("email")
		if err != nil {
			return "", err
		}
		phone, err := req.String("phone")
		if err != nil {
			return "", err
		}
		customer := &models.Customer{Name: name, Email: email, Phone: phone}
		if err := h.customerService.AddCustomer(customer); err != nil {
			return errorResult(err), nil
		}
		return resultJSON(fiber.Map{"status": "success", "id": customer.ID, "message": "Customer added"}), nil

	case soap.OpGetCustomers:
		customers, err := h.customerService.GetAllCustomers()
		if err != nil {
			return errorResult(err), nil
		}
		if customers == nil {
			customers = []models.Customer{}
		}
		return resultJSON(customers), nil

	case soap.OpAddProduct:
		name, err := req.String("name")
		if err != nil {
			return "", err
		}
		sku, err := req.String("sku")
		if err != nil {
			return "", err
		}
		price, err := req.Float("price")
		if err != nil {
			return "", err
		}
		stock, err := req.Int("stock")
		if err != nil {
			return "", err
		}
		if price < 0 || stock < 0 {
			return resultJSON(fiber.Map{"status": "error", "message": "Price and stock must be non-negative"}), nil
		}
		product := &models.Product{Name: name, SKU: sku, Price: price, Stock: stock}
		if err := h.productService.AddProduct(product); err != nil {
			return errorResult(err), nil
		}
		return resultJSON(fiber.Map{"status": "success", "id": product.ID, "message": "Product added"}), nil

	case soap.OpGetProducts:
		products, err := h.productService.GetAllProducts()
		if err != nil {
			return errorResult(err), nil
		}
		if products == nil {
			products = []models.Product{}
		}
		return resultJSON(products), nil

	case soap.OpCreateOrder:
		customerID, err := req.Int("customer_id")
		if err != nil {
			return "", err
		}
		productID, err := req.Int("product_id")
		if err != nil {
			return "", err
		}
		quantity, err := req.Int("quantity")
		if err != nil {
			return "", err
		}
		order, err := h.orderService.CreateOrder(customerID, productID, quantity)
		if err != nil {
			return errorResult(err), nil
		}
		return resultJSON(fiber.Map{"status": "success", "id": order.ID, "message": "Order created", "total": order.TotalPrice}), nil

	case soap.OpGetOrders:
		orders, err := h.orderService.GetAllOrders()
		if err != nil {
			return errorResult(err), nil
		}
		if orders == nil {
			orders = []models.Order{}
		}
		return resultJSON(orders), nil
	}

	return "", soap.ErrMalformed
}

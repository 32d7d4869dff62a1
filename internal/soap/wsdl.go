package soap

// WSDL is the static service description served at /wsdl: six RPC/literal
// operations over the types the store persists.
const WSDL = `<?xml version="1.0" encoding="UTF-8"?>
<definitions xmlns="http://schemas.xmlsoap.org/wsdl/"
             xmlns:tns="http://erpsystem.local/soap"
             xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
             xmlns:xsd="http://www.w3.org/2001/XMLSchema"
             targetNamespace="http://erpsystem.local/soap"
             name="ERPSystem">

    <types>
        <xsd:schema targetNamespace="http://erpsystem.local/soap">
            <xsd:element name="Customer">
                <xsd:complexType>
                    <xsd:sequence>
                        <xsd:element name="id" type="xsd:int"/>
                        <xsd:element name="name" type="xsd:string"/>
                        <xsd:element name="email" type="xsd:string"/>
                        <xsd:element name="phone" type="xsd:string"/>
                    </xsd:sequence>
                </xsd:complexType>
            </xsd:element>

            <xsd:element name="Product">
                <xsd:complexType>
                    <xsd:sequence>
                        <xsd:element name="id" type="xsd:int"/>
                        <xsd:element name="name" type="xsd:string"/>
                        <xsd:element name="sku" type="xsd:string"/>
                        <xsd:element name="price" type="xsd:float"/>
                        <xsd:element name="stock" type="xsd:int"/>
                    </xsd:sequence>
                </xsd:complexType>
            </xsd:element>

            <xsd:element name="Order">
                <xsd:complexType>
                    <xsd:sequence>
                        <xsd:element name="id" type="xsd:int"/>
                        <xsd:element name="customer_id" type="xsd:int"/>
                        <xsd:element name="product_id" type="xsd:int"/>
                        <xsd:element name="quantity" type="xsd:int"/>
                        <xsd:element name="total_price" type="xsd:float"/>
                        <xsd:element name="status" type="xsd:string"/>
                    </xsd:sequence>
                </xsd:complexType>
            </xsd:element>
        </xsd:schema>
    </types>

    <message name="AddCustomerRequest">
        <part name="name" type="xsd:string"/>
        <part name="email" type="xsd:string"/>
        <part name="phone" type="xsd:string"/>
    </message>
    <message name="AddCustomerResponse">
        <part name="result" type="xsd:string"/>
    </message>

    <message name="GetCustomersRequest"/>
    <message name="GetCustomersResponse">
        <part name="customers" type="xsd:string"/>
    </message>

    <message name="AddProductRequest">
        <part name="name" type="xsd:string"/>
        <part name="sku" type="xsd:string"/>
        <part name="price" type="xsd:float"/>
        <part name="stock" type="xsd:int"/>
    </message>
    <message name="AddProductResponse">
        <part name="result" type="xsd:string"/>
    </message>

    <message name="GetProductsRequest"/>
    <message name="GetProductsResponse">
        <part name="products" type="xsd:string"/>
    </message>

    <message name="CreateOrderRequest">
        <part name="customer_id" type="xsd:int"/>
        <part name="product_id" type="xsd:int"/>
        <part name="quantity" type="xsd:int"/>
    </message>
    <message name="CreateOrderResponse">
        <part name="result" type="xsd:string"/>
    </message>

    <message name="GetOrdersRequest"/>
    <message name="GetOrdersResponse">
        <part name="orders" type="xsd:string"/>
    </message>

    <portType name="ERPPortType">
        <operation name="AddCustomer">
            <input message="tns:AddCustomerRequest"/>
            <output message="tns:AddCustomerResponse"/>
        </operation>
        <operation name="GetCustomers">
            <input message="tns:GetCustomersRequest"/>
            <output message="tns:GetCustomersResponse"/>
        </operation>
        <operation name="AddProduct">
            <input message="tns:AddProductRequest"/>
            <output message="tns:AddProductResponse"/>
        </operation>
        <operation name="GetProducts">
            <input message="tns:GetProductsRequest"/>
            <output message="tns:GetProductsResponse"/>
        </operation>
        <operation name="CreateOrder">
            <input message="tns:CreateOrderRequest"/>
            <output message="tns:CreateOrderResponse"/>
        </operation>
        <operation name="GetOrders">
            <input message="tns:GetOrdersRequest"/>
            <output message="tns:GetOrdersResponse"/>
        </operation>
    </portType>

    <binding name="ERPBinding" type="tns:ERPPortType">
        <soap:binding style="rpc" transport="http://schemas.xmlsoap.org/soap/http"/>
        <operation name="AddCustomer">
            <soap:operation soapAction="AddCustomer"/>
            <input><soap:body use="literal"/></input>
            <output><soap:body use="literal"/></output>
        </operation>
        <operation name="GetCustomers">
            <soap:operation soapAction="GetCustomers"/>
            <input><soap:body use="literal"/></input>
            <output><soap:body use="literal"/></output>
        </operation>
        <operation name="AddProduct">
            <soap:operation soapAction="AddProduct"/>
            <input><soap:body use="literal"/></input>
            <output><soap:body use="literal"/></output>
        </operation>
        <operation name="GetProducts">
            <soap:operation soapAction="GetProducts"/>
            <input><soap:body use="literal"/></input>
            <output><soap:body use="literal"/></output>
        </operation>
        <operation name="CreateOrder">
            <soap:operation soapAction="CreateOrder"/>
            <input><soap:body use="literal"/></input>
            <output><soap:body use="literal"/></output>
        </operation>
        <operation name="GetOrders">
            <soap:operation soapAction="GetOrders"/>
            <input><soap:body use="literal"/></input>
            <output><soap:body use="literal"/></output>
        </operation>
    </binding>

    <service name="ERPService">
        <port name="ERPPort" binding="tns:ERPBinding">
            <soap:address location="http://localhost:5000/soap"/>
        </port>
    </service>
</definitions>`

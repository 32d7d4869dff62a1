package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// WebHandler serves the dashboard and login pages. Both are static HTML; the
// credential check is entirely client-side (the Basic credential lives in
// localStorage and rides along on every /api call).
type WebHandler struct{}

// NewWebHandler creates a new WebHandler.
func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

// RegisterRoutes registers the HTML pages with the Fiber app.
func (h *WebHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleDashboard)
	router.Get("/login", h.HandleLogin)
}

// HandleDashboard serves the dashboard page.
func (h *WebHandler) HandleDashboard(c *fiber.Ctx) error {
	return c.Type("html").SendString(dashboardHTML)
}

// HandleLogin serves the login page.
func (h *WebHandler) HandleLogin(c *fiber.Ctx) error {
	return c.Type("html").SendString(loginHTML)
}

const loginHTML = `<!DOCTYPE html>
<html>
<head>
    <title>ERP System - Login</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: Arial, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            display: flex; justify-content: center; align-items: center;
            min-height: 100vh;
        }
        .login-container {
            background: white; padding: 40px; border-radius: 10px;
            box-shadow: 0 10px 25px rgba(0,0,0,0.2); width: 400px;
        }
        h1 { color: #333; margin-bottom: 30px; text-align: center; }
        .form-group { margin-bottom: 20px; }
        label { display: block; margin-bottom: 5px; color: #333; font-weight: bold; }
        input { width: 100%; padding: 12px; border: 1px solid #ddd; border-radius: 5px; }
        button {
            width: 100%; padding: 12px; background: #667eea; color: white;
            border: none; border-radius: 5px; font-size: 16px; cursor: pointer;
        }
        button:hover { background: #5a6fd6; }
        .error { color: #c0392b; margin-top: 15px; text-align: center; }
        .hint { margin-top: 20px; color: #888; font-size: 13px; text-align: center; }
    </style>
</head>
<body>
    <div class="login-container">
        <h1>ERP System</h1>
        <form id="loginForm">
            <div class="form-group">
                <label for="username">Username</label>
                <input type="text" id="username" required>
            </div>
            <div class="form-group">
                <label for="password">Password</label>
                <input type="password" id="password" required>
            </div>
            <button type="submit">Login</button>
        </form>
        <div id="loginError" class="error"></div>
        <div class="hint">Try admin / admin123</div>
    </div>
    <script>
        document.getElementById('loginForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const username = document.getElementById('username').value;
            const password = document.getElementById('password').value;
            const credentials = btoa(username + ':' + password);
            const res = await fetch('/api/customers', {
                headers: { 'Authorization': 'Basic ' + credentials }
            });
            if (res.status === 401) {
                document.getElementById('loginError').textContent = 'Invalid credentials';
                return;
            }
            localStorage.setItem('erp_credentials', credentials);
            window.location.href = '/';
        });
    </script>
</body>
</html>`

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
    <title>ERP System - Dashboard</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: Arial, sans-serif; background: #f4f6f9; padding: 20px; }
        header {
            display: flex; justify-content: space-between; align-items: center;
            margin-bottom: 20px;
        }
        h1 { color: #333; }
        .logout { padding: 8px 16px; background: #c0392b; color: white; border: none; border-radius: 5px; cursor: pointer; }
        .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(340px, 1fr)); gap: 20px; }
        .card { background: white; border-radius: 8px; padding: 20px; box-shadow: 0 2px 6px rgba(0,0,0,0.1); }
        .card h2 { color: #667eea; margin-bottom: 15px; }
        table { width: 100%; border-collapse: collapse; margin-top: 10px; }
        th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #eee; font-size: 14px; }
        form { display: grid; gap: 8px; margin-bottom: 10px; }
        input { padding: 8px; border: 1px solid #ddd; border-radius: 4px; }
        button[type=submit] { padding: 8px; background: #667eea; color: white; border: none; border-radius: 4px; cursor: pointer; }
        .success { color: #27ae60; }
        .error { color: #c0392b; }
    </style>
</head>
<body>
    <header>
        <h1>ERP Dashboard</h1>
        <button class="logout" onclick="logout()">Logout</button>
    </header>
    <div class="grid">
        <div class="card">
            <h2>Customers</h2>
            <form id="customerForm">
                <input id="custName" placeholder="Name" required>
                <input id="custEmail" type="email" placeholder="Email" required>
                <input id="custPhone" placeholder="Phone" required>
                <button type="submit">Add Customer</button>
            </form>
            <div id="customerMsg"></div>
            <table id="customerTable"></table>
        </div>
        <div class="card">
            <h2>Products</h2>
            <form id="productForm">
                <input id="prodName" placeholder="Name" required>
                <input id="prodSku" placeholder="SKU" required>
                <input id="prodPrice" type="number" step="0.01" min="0" placeholder="Price" required>
                <input id="prodStock" type="number" min="0" placeholder="Stock" required>
                <button type="submit">Add Product</button>
            </form>
            <div id="productMsg"></div>
            <table id="productTable"></table>
        </div>
        <div class="card">
            <h2>Orders</h2>
            <form id="orderForm">
                <input id="ordCustomerId" type="number" min="1" placeholder="Customer ID" required>
                <input id="ordProductId" type="number" min="1" placeholder="Product ID" required>
                <input id="ordQuantity" type="number" min="1" placeholder="Quantity" required>
                <button type="submit">Create Order</button>
            </form>
            <div id="orderMsg"></div>
            <table id="orderTable"></table>
        </div>
    </div>
    <script>
        const credentials = localStorage.getItem('erp_credentials');
        if (!credentials) { window.location.href = '/login'; }

        function getAuthHeaders() {
            return {
                'Authorization': 'Basic ' + credentials,
                'Content-Type': 'application/json'
            };
        }

        function logout() {
            localStorage.removeItem('erp_credentials');
            window.location.href = '/login';
        }

        function renderTable(id, rows, columns) {
            const table = document.getElementById(id);
            let html = '<tr>' + columns.map(c => '<th>' + c + '</th>').join('') + '</tr>';
            for (const row of rows) {
                html += '<tr>' + columns.map(c => '<td>' + row[c] + '</td>').join('') + '</tr>';
            }
            table.innerHTML = html;
        }

        async function loadJSON(url) {
            const res = await fetch(url, { headers: getAuthHeaders() });
            if (res.status === 401) { logout(); return []; }
            return res.json();
        }

        async function loadCustomers() {
            renderTable('customerTable', await loadJSON('/api/customers'), ['id', 'name', 'email', 'phone']);
        }
        async function loadProducts() {
            renderTable('productTable', await loadJSON('/api/products'), ['id', 'name', 'sku', 'price', 'stock']);
        }
        async function loadOrders() {
            renderTable('orderTable', await loadJSON('/api/orders'), ['id', 'customer_id', 'product_id', 'quantity', 'total_price', 'status']);
        }

        document.getElementById('customerForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const res = await fetch('/api/customers', {
                method: 'POST',
                headers: getAuthHeaders(),
                body: JSON.stringify({
                    name: document.getElementById('custName').value,
                    email: document.getElementById('custEmail').value,
                    phone: document.getElementById('custPhone').value
                })
            });
            if (res.status === 401) { logout(); return; }
            const data = await res.json();
            document.getElementById('customerMsg').innerHTML = '<span class="success">' + data.message + '</span>';
            document.getElementById('customerForm').reset();
            loadCustomers();
        });

        document.getElementById('productForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const res = await fetch('/api/products', {
                method: 'POST',
                headers: getAuthHeaders(),
                body: JSON.stringify({
                    name: document.getElementById('prodName').value,
                    sku: document.getElementById('prodSku').value,
                    price: parseFloat(document.getElementById('prodPrice').value),
                    stock: parseInt(document.getElementById('prodStock').value)
                })
            });
            if (res.status === 401) { logout(); return; }
            const data = await res.json();
            document.getElementById('productMsg').innerHTML = '<span class="success">' + data.message + '</span>';
            document.getElementById('productForm').reset();
            loadProducts();
        });

        document.getElementById('orderForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const res = await fetch('/api/orders', {
                method: 'POST',
                headers: getAuthHeaders(),
                body: JSON.stringify({
                    customer_id: parseInt(document.getElementById('ordCustomerId').value),
                    product_id: parseInt(document.getElementById('ordProductId').value),
                    quantity: parseInt(document.getElementById('ordQuantity').value)
                })
            });
            if (res.status === 401) { logout(); return; }
            const data = await res.json();
            if (data.status === 'success') {
                document.getElementById('orderMsg').innerHTML = '<span class="success">' + data.message + ' - Total: $' + data.total.toFixed(2) + '</span>';
            } else {
                document.getElementById('orderMsg').innerHTML = '<span class="error">' + data.message + '</span>';
            }
            document.getElementById('orderForm').reset();
            loadOrders();
            loadProducts();
        });

        loadCustomers();
        loadProducts();
        loadOrders();
        setInterval(() => { loadCustomers(); loadProducts(); loadOrders(); }, 5000);
    </script>
</body>
</html>`

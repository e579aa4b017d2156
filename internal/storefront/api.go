package storefront

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/guonaihong/gout"
)

// Client talks to the storefront REST API. A fresh session id is minted per
// client and sent along with every request.
type Client struct {
	BaseURL   string
	SessionID string
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, SessionID: uuid.NewString()}
}

// APIError carries the HTTP status and the server's message for non-2xx
// responses.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type errBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func apiErr(code int, body string) error {
	var eb errBody
	_ = json.Unmarshal([]byte(body), &eb)
	msg := eb.Error
	if msg == "" {
		msg = eb.Message
	}
	if msg == "" {
		msg = "request failed"
	}
	return &APIError{Status: code, Message: msg}
}

func (c *Client) get(path string, query gout.H, out any) error {
	code := 0
	body := ""
	df := gout.GET(c.BaseURL + path).
		SetHeader(gout.H{"X-Session-ID": c.SessionID}).
		Code(&code).
		BindBody(&body)
	if query != nil {
		df = df.SetQuery(query)
	}
	if err := df.Do(); err != nil {
		return err
	}
	if code != 200 {
		return apiErr(code, body)
	}
	return json.Unmarshal([]byte(body), out)
}

func (c *Client) post(path string, payload any, out any) (int, error) {
	code := 0
	body := ""
	err := gout.POST(c.BaseURL + path).
		SetHeader(gout.H{"X-Session-ID": c.SessionID}).
		SetJSON(payload).
		Code(&code).
		BindBody(&body).
		Do()
	if err != nil {
		return 0, err
	}
	if code < 200 || code > 299 {
		return code, apiErr(code, body)
	}
	return code, json.Unmarshal([]byte(body), out)
}

func (c *Client) Products() ([]Product, error) {
	var out []Product
	err := c.get("/api/products", nil, &out)
	return out, err
}

func (c *Client) NewProducts() ([]Product, error) {
	var out []Product
	err := c.get("/api/products/new", nil, &out)
	return out, err
}

func (c *Client) SaleProducts() ([]Product, error) {
	var out []Product
	err := c.get("/api/products/sale", nil, &out)
	return out, err
}

func (c *Client) Product(id int) (Product, error) {
	var out Product
	err := c.get(fmt.Sprintf("/api/products/%d", id), nil, &out)
	return out, err
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Color struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

func (c *Client) Categories() ([]Category, error) {
	var out []Category
	err := c.get("/api/products/categories", nil, &out)
	return out, err
}

func (c *Client) Colors() ([]Color, error) {
	var out []Color
	err := c.get("/api/products/colors", nil, &out)
	return out, err
}

type SearchResult struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"salePrice"`
	IsSale    bool     `json:"is_sale"`
}

func (c *Client) Search(q string) ([]SearchResult, error) {
	var out []SearchResult
	err := c.get("/api/products/search", gout.H{"q": q}, &out)
	return out, err
}

type User struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Session is the authenticated state handed back by register/login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (c *Client) Register(name, email, password string) (Session, error) {
	var s Session
	_, err := c.post("/api/auth/register", gout.H{"name": name, "email": email, "password": password}, &s)
	return s, err
}

func (c *Client) Login(email, password string) (Session, error) {
	var s Session
	_, err := c.post("/api/auth/login", gout.H{"email": email, "password": password}, &s)
	return s, err
}

// Me verifies the bearer token against the API and returns the identity.
func (c *Client) Me(token string) (User, error) {
	code := 0
	body := ""
	err := gout.GET(c.BaseURL + "/api/auth/me").
		SetHeader(gout.H{"X-Session-ID": c.SessionID, "Authorization": "Bearer " + token}).
		Code(&code).
		BindBody(&body).
		Do()
	if err != nil {
		return User{}, err
	}
	if code != 200 {
		return User{}, apiErr(code, body)
	}
	var out struct {
		User User `json:"user"`
	}
	return out.User, json.Unmarshal([]byte(body), &out)
}

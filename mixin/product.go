package mixin

// User mixes in Logging only.
type User struct {
	Logging `json:"-" yaml:"-" toml:"-"`
	Name    string `json:"name" yaml:"name" toml:"name"`
}

func NewUser(name string) *User {
	u := &User{Logging: NewLogging("User"), Name: name}
	u.Log("User object '" + name + "' created.")
	return u
}

func (u *User) Greet() string {
	u.Log("Greeting user '" + u.Name + "'")
	return "Hello, " + u.Name
}

// Product mixes in Logging, serialization and Repr.
type Product struct {
	Logging `json:"-" yaml:"-" toml:"-"`
	Name    string  `json:"name" yaml:"name" toml:"name"`
	Price   float64 `json:"price" yaml:"price" toml:"price"`
}

func NewProduct(name string, price float64) *Product {
	return &Product{Logging: NewLogging("Product"), Name: name, Price: price}
}

func (p *Product) String() string { return Repr(p) }

func (p *Product) ToJSON() (string, error) { return ToJSON(p) }

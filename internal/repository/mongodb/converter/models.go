package converter

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductModel представляет документ коллекции products.
type ProductModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Price       int64              `bson:"price"`
	Quantity    int64              `bson:"quantity"`
	Email       string             `bson:"email,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
}

// OrderModel представляет документ коллекции orders.
type OrderModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Customer      string             `bson:"customer"`
	CustomerName  string             `bson:"customerName,omitempty"`
	ProductID     string             `bson:"productId,omitempty"`
	Quantity      int64              `bson:"quantity,omitempty"`
	Price         int64              `bson:"price"`
	Address       string             `bson:"address,omitempty"`
	Phone         string             `bson:"phone,omitempty"`
	Status        string             `bson:"status,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty"`
}

// PaymentModel представляет документ коллекции payments.
type PaymentModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OrderID       primitive.ObjectID `bson:"orderId"`
	TransactionID string             `bson:"transactionId"`
	Amount        int64              `bson:"amount"`
	Customer      string             `bson:"customer,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

// UserModel представляет документ коллекции users. Email уникален.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	Role      string             `bson:"role,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
	Address   string             `bson:"address,omitempty"`
	Education string             `bson:"education,omitempty"`
	Image     string             `bson:"image,omitempty"`
}

// ReviewModel представляет документ коллекции reviews.
type ReviewModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email,omitempty"`
	Image     string             `bson:"image,omitempty"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
}

// UserProfileModel — поля профиля для $set. Пустые поля не пишутся, роль сюда не входит.
type UserProfileModel struct {
	Name      string `bson:"name,omitempty"`
	Phone     string `bson:"phone,omitempty"`
	Address   string `bson:"address,omitempty"`
	Education string `bson:"education,omitempty"`
	Image     string `bson:"image,omitempty"`
}

func (m *UserProfileModel) IsEmpty() bool {
	return *m == UserProfileModel{}
}

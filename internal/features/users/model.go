package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account
// @Description Registered user account
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Username   string             `bson:"username" json:"username" example:"jane_doe"`
	Email      string             `bson:"email" json:"email" example:"jane@example.com"`
	Password   string             `bson:"password" json:"-"`
	ProfilePic string             `bson:"profile_pic" json:"profile_pic" example:"https://res.cloudinary.com/demo/profile.png"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicProfile returns the fields safe to return to clients.
func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":          u.ID,
		"username":    u.Username,
		"email":       u.Email,
		"profile_pic": u.ProfilePic,
	}
}

// SignupRequest represents the multipart signup form fields
// @Description Data required to register an account
type SignupRequest struct {
	Username string `form:"username" example:"jane_doe"`
	Email    string `form:"email" example:"jane@example.com"`
	Password string `form:"password" example:"hunter42"`
}

// SigninRequest represents login credentials
// @Description Credentials for signing in
type SigninRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"hunter42"`
}

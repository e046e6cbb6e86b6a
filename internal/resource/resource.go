// Package resource maps entity state to wire representation. Formatters are
// pure functions; image keys are resolved to short-lived presigned URLs
// through the injected presign function and never leak raw storage keys.
package resource

import (
	"github.com/gin-gonic/gin"

	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/service"
)

// PresignFunc resolves a blob key to a time-limited read URL, returning ""
// when resolution fails so serialization degrades to a null image.
type PresignFunc func(key string) string

func imageURL(key *string, presign PresignFunc) *string {
	if key == nil || *key == "" {
		return nil
	}
	url := presign(*key)
	if url == "" {
		return nil
	}
	return &url
}

func Product(p *models.Product, presign PresignFunc) gin.H {
	out := gin.H{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"category_id": p.CategoryID,
		"category":    nil,
		"image":       imageURL(p.Image, presign),
		"is_active":   p.IsActive,
		"created_at":  p.CreatedAt,
	}
	if p.Category != nil {
		out["category"] = gin.H{
			"id":   p.Category.ID,
			"name": p.Category.Name,
		}
	}
	return out
}

func ProductCollection(products []*models.Product, presign PresignFunc) []gin.H {
	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, Product(p, presign))
	}
	return out
}

func Category(c *models.Category, presign PresignFunc) gin.H {
	out := gin.H{
		"id":         c.ID,
		"name":       c.Name,
		"product_id": c.ProductID,
		"product":    nil,
		// The category image is borrowed from the representative product.
		"image":      nil,
		"created_at": c.CreatedAt,
	}
	if c.Product != nil {
		out["product"] = Product(c.Product, presign)
		out["image"] = imageURL(c.Product.Image, presign)
	}
	return out
}

func CategoryCollection(categories []*models.Category, presign PresignFunc) []gin.H {
	out := make([]gin.H, 0, len(categories))
	for _, c := range categories {
		out = append(out, Category(c, presign))
	}
	return out
}

func News(n *models.News, presign PresignFunc) gin.H {
	return gin.H{
		"id":          n.ID,
		"title":       n.Title,
		"description": n.Description,
		"text":        n.Text,
		"date":        n.Date.Format(service.DateLayout),
		"image":       imageURL(n.Image, presign),
		"is_active":   n.IsActive,
		"created_at":  n.CreatedAt,
	}
}

func NewsCollection(items []*models.News, presign PresignFunc) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, n := range items {
		out = append(out, News(n, presign))
	}
	return out
}

func Exhibition(e *models.Exhibition, presign PresignFunc) gin.H {
	return gin.H{
		"id":          e.ID,
		"title":       e.Title,
		"description": e.Description,
		"text":        e.Text,
		"date":        e.Date.Format(service.DateLayout),
		"image":       imageURL(e.Image, presign),
		"is_active":   e.IsActive,
		"created_at":  e.CreatedAt,
	}
}

func ExhibitionCollection(items []*models.Exhibition, presign PresignFunc) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, e := range items {
		out = append(out, Exhibition(e, presign))
	}
	return out
}

func User(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"biography":  u.Biography,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}

func UserCollection(users []*models.User) []gin.H {
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, User(u))
	}
	return out
}

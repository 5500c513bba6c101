package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims standart JWT claim'lerine uygulamaya özgü alanları ekler.
// Filter, kullanıcının sipariş görme kapsamını belirleyen tanımlayıcının
// serileştirilmiş halidir; böylece her istekte DB'ye gitmeden kapsam kurulur.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Role     string `json:"role"` // "satici" | "ofis" | "admin" | "upload"
	FullName string `json:"full_name"`
	Filter   string `json:"filter"` // JSON: {field,value} | {field,values} | {onlyUpload} | null
}

// Generate imzalı bir JWT üretir; userID, rol, görünen ad ve filtre tanımlayıcısını taşır.
func Generate(secret, userID, role, fullName, filter, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret boş")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   userID,
		Role:     role,
		FullName: fullName,
		Filter:   filter,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse token'ı doğrular ve claim'leri döndürür.
// Token geçersiz, süresi dolmuş veya imzası yanlışsa hata döner.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret boş")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("beklenmeyen imza yöntemi: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("geçersiz claim")
	}
	return claims, nil
}

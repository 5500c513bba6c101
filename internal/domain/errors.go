package domain

import "errors"

// Alan (domain) hataları; dış bağımlılık yok.
var (
	ErrNotFound           = errors.New("kayıt bulunamadı")
	ErrUserNotFound       = errors.New("kullanıcı bulunamadı")
	ErrUsernameTaken      = errors.New("bu kullanıcı adı zaten kullanılıyor")
	ErrInvalidInput       = errors.New("geçersiz girdi")
	ErrInvalidCredentials = errors.New("geçersiz kullanıcı adı veya şifre")
	ErrUnauthorized       = errors.New("yetkisiz")
	ErrForbidden          = errors.New("erişim reddedildi")
	ErrUploadOnly         = errors.New("bu hesap yalnızca dosya yükleyebilir")
	ErrEmptySheet         = errors.New("excel dosyası boş veya uyumsuz formatta")
)

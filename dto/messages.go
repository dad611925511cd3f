package dto

// Messages shown to form users.
const (
	MsgSuccess         = "Mesajınız başarıyla iletildi. En kısa sürede dönüş yapılacaktır."
	MsgCaptchaRequired = "Güvenlik doğrulaması gereklidir."
	MsgCaptchaFailed   = "Güvenlik doğrulaması başarısız oldu. Lütfen tekrar deneyin."
	MsgMissingFields   = "Lütfen Ad Soyad ve Telefon alanlarını doldurun."
	MsgSendFailed      = "Mesaj iletilemedi. Lütfen daha sonra tekrar deneyin veya doğrudan telefon ile ulaşın."
	MsgTooManyRequests = "Çok fazla istek yaptınız. Lütfen 24 saat sonra tekrar deneyin."
	MsgServerError     = "Sunucu tarafında bir hata oluştu."
	MsgNotFound        = "İstenen kaynak bulunamadı."
	MsgOriginDenied    = "Bu kaynaktan gelen isteklere izin verilmiyor."
)

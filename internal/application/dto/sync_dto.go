package dto

// RowIssue senkron sırasında atlanan ya da yazılamayan bir satır.
type RowIssue struct {
	Line   int    `json:"line"`             // Excel satır numarası (1 tabanlı, başlık dahil)
	Key    string `json:"key,omitempty"`    // biliniyorsa sipariş anahtarı
	Reason string `json:"reason"`
}

// SyncResponse bir senkron koşusunun yapılandırılmış sonucu: sayaçlar artı
// atlanan/başarısız satırların listesi (gözlemlenebilirlik için).
type SyncResponse struct {
	Inserted    int        `json:"inserted"`
	Updated     int        `json:"updated"`
	Deactivated int        `json:"deactivated"`
	Skipped     []RowIssue `json:"skipped,omitempty"`
	Failed      []RowIssue `json:"failed,omitempty"`
}

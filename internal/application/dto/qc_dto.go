package dto

import "time"

// SaveQCRequest is one inspection form submission, keyed by serial number.
type SaveQCRequest struct {
	SN          string     `json:"sn" validate:"required"`
	QCDate      string     `json:"qc_date"`
	Staff       string     `json:"staff" validate:"required"`
	ShopLabel   string     `json:"shop_label"`
	QCPass      string     `json:"qc_pass"`
	YDLabel     string     `json:"yd_label"`
	ProductType string     `json:"product_type"`
	BodyColor   string     `json:"body_color"`
	BulbType    string     `json:"bulb_type"`
	BulbColor   string     `json:"bulb_color"`
	Dimention   string     `json:"dimention"`
	QCRemark    string     `json:"qc_remark"`
	QCQty       int64      `json:"qc_qty"`
	PicLabel1   string     `json:"pic_label1"`
	PicLabel2   string     `json:"pic_label2"`
	PicManual1  string     `json:"pic_manual1"`
	PicManual2  string     `json:"pic_manual2"`
	PicQC       []string   `json:"pic_qc"`
	PicDriver   string     `json:"pic_driver"`
	PicRemote   string     `json:"pic_remote"`
	ShipID      string     `json:"ship_id"`
	Baseline    *time.Time `json:"baseline,omitempty"`
}

// QCResponse is one inspection record.
type QCResponse struct {
	SN          string    `json:"sn"`
	Timestamp   time.Time `json:"timestamp"`
	RecBy       string    `json:"rec_by"`
	QCDate      string    `json:"qc_date"`
	Staff       string    `json:"staff"`
	ShopLabel   string    `json:"shop_label"`
	QCPass      string    `json:"qc_pass"`
	YDLabel     string    `json:"yd_label"`
	ProductType string    `json:"product_type"`
	BodyColor   string    `json:"body_color"`
	BulbType    string    `json:"bulb_type"`
	BulbColor   string    `json:"bulb_color"`
	Dimention   string    `json:"dimention"`
	QCRemark    string    `json:"qc_remark"`
	QCQty       int64     `json:"qc_qty"`
	PicLabel1   string    `json:"pic_label1"`
	PicLabel2   string    `json:"pic_label2"`
	PicManual1  string    `json:"pic_manual1"`
	PicManual2  string    `json:"pic_manual2"`
	PicQC       []string  `json:"pic_qc"`
	PicDriver   string    `json:"pic_driver"`
	PicRemote   string    `json:"pic_remote"`
	ShipID      string    `json:"ship_id"`
}

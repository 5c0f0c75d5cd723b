package model

// Roll はダイスを1回振った結果。
// 面数が0以下の場合はErrorのみが設定される。
type Roll struct {
	Error     string  `json:"error,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
	Roll      *Number `json:"roll,omitempty"`
	ID        int     `json:"ID"`
}

// CoinFlip はコイントスの結果。FlipはHまたはT。
type CoinFlip struct {
	Timestamp string `json:"timestamp"`
	Flip      string `json:"flip"`
	ID        int    `json:"ID"`
}

// RPSResult はじゃんけんの結果。
type RPSResult struct {
	ID        int    `json:"ID"`
	Timestamp string `json:"timestamp"`
	Result    string `json:"result"`
}

// Place はランダムな緯度経度。小数点以下6桁の文字列で表す。
type Place struct {
	Timestamp string `json:"timestamp"`
	Lat       string `json:"lat"`
	Lon       string `json:"lon"`
	ID        int    `json:"ID"`
}

// Color は生成した色。Colorの具体的な型はフォーマットごとに異なる。
type Color struct {
	Timestamp string `json:"timestamp"`
	Color     any    `json:"color"`
	ID        int    `json:"ID"`
}

// HSB はHSL/HSB指定時の色。HSLの場合もフィールド名はh, s, b。
type HSB struct {
	H int `json:"h"`
	S int `json:"s"`
	B int `json:"b"`
}

// RGB はRGB指定時の色。
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// CMYK はCMYK指定時の色。
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// Hex は16進数指定時の色。各バイトはゼロ埋めしない。
type Hex struct {
	Hex string `json:"hex"`
}

// Gender コード
const (
	GenderMale   = "m"
	GenderFemale = "f"
)

// Person はランダムに生成した人物。
// 名前リストの範囲外を引いた場合、NameまたはSurnameはnilになりJSONから省かれる。
type Person struct {
	Name        *string `json:"name,omitempty"`
	Surname     *string `json:"surname,omitempty"`
	Gender      string  `json:"gender"`
	Age         int     `json:"age"`
	DateOfBirth Date    `json:"dateOfBirth"`
	ID          int     `json:"ID"`
}

// Date は生年月日。Monthは1始まり。
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

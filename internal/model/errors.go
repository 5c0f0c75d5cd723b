// Package model はAPIレスポンスとして返すエンティティとエラー種別を定義する。
package model

import "fmt"

// ErrorKind はパラメータ検証・生成エラーの種別を表す。
type ErrorKind string

// 定義済みエラー種別
const (
	KindNotANumber    ErrorKind = "NOT_A_NUMBER"
	KindOutOfRange    ErrorKind = "OUT_OF_RANGE"
	KindTooLarge      ErrorKind = "TOO_LARGE"
	KindInvalidFormat ErrorKind = "INVALID_FORMAT"
	KindInvalidGender ErrorKind = "INVALID_GENDER"
)

// APIError はクライアントへ {"error": Message} として返すエラーを表す。
// ステータスコードは常に200で返す。
type APIError struct {
	Kind    ErrorKind // エラー種別
	Message string    // レスポンスに含めるメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// 定義済みエラー
var (
	// ErrNotANumber はamountやfacesが数値として解釈できない場合のエラー。
	// facesの場合もメッセージはamountを指す。
	ErrNotANumber = &APIError{Kind: KindNotANumber, Message: "The amount must be a number!"}
	// ErrOutOfRange はamountが0以下の場合のエラー。
	ErrOutOfRange = &APIError{Kind: KindOutOfRange, Message: "The amount must be greater than 0!"}
	// ErrInvalidFormat は色のフォーマットが不明な場合のエラー。
	ErrInvalidFormat = &APIError{Kind: KindInvalidFormat, Message: "Format not valid!"}
	// ErrInvalidGender は性別指定が不明な場合のエラー。
	ErrInvalidGender = &APIError{Kind: KindInvalidGender, Message: "Gender not valid!"}
)

// NewTooLargeError はamountが上限を超えた場合のエラーを生成する。
func NewTooLargeError(max int) *APIError {
	return &APIError{
		Kind:    KindTooLarge,
		Message: fmt.Sprintf("The amount must not exceed %d!", max),
	}
}

// FacesBelowZeroMessage はダイスの面数が0以下の場合にアイテム単位で返すメッセージ。
const FacesBelowZeroMessage = "The number of faces cannot be below 0."

package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_chess_puzzle_keep/internal/chess"
	"go_chess_puzzle_keep/internal/model"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":           "名前",
	"email":          "メールアドレス",
	"fen":            "局面",
	"starting_fen":   "開始局面",
	"expected_moves": "正解手順",
	"difficulty":     "難易度",
	"rating":         "レーティング",
	"themes":         "テーマ",
	"puzzle_id":      "パズルID",
	"move":           "指し手",
	"elapsed_ms":     "経過時間",
}

func translateField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 盤面と指し手の独自タグ
	if err := Validator.RegisterValidation("fen", func(fl validator.FieldLevel) bool {
		_, err := chess.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		log.Fatal(err)
	}
	if err := Validator.RegisterValidation("uci", func(fl validator.FieldLevel) bool {
		_, err := chess.ParseMove(fl.Field().String())
		return err == nil
	}); err != nil {
		log.Fatal(err)
	}

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("fen", "{0}はFEN形式ではありません。")
	registerTranslation("uci", "{0}はUCI形式の指し手ではありません (例: e2e4, e7e8q)。")
	registerTranslation("oneof", "{0}は次のいずれかを指定してください: {1}")

	// min/max は文字列と数値で意味が変わるので種別で出し分ける
	registerBound := func(tag, strMsg, numMsg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag+"-string", strMsg, true); err != nil {
				return err
			}
			return ut.Add(tag+"-number", numMsg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := tag + "-number"
			if fe.Kind() == reflect.String {
				key = tag + "-string"
			}
			t, _ := ut.T(key, translateField(fe), fe.Param())
			return t
		})
	}
	registerBound("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}以上で指定してください。")
	registerBound("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}以下で指定してください。")
}

// ValidateStruct は構造体を検証し、失敗時は日本語メッセージ付きの AppError を返します。
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return model.NewAppError("VALIDATION_ERROR", "入力値の検証に失敗しました。", "", errors.Join(model.ErrInvalidInput, err))
	}
	return NewValidationError(verrs)
}

// NewValidationError は最初のエラーのフィールドとすべてのメッセージをまとめます。
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fe.Translate(Trans))
	}
	field := ""
	if len(errs) > 0 {
		field = errs[0].Field()
	}
	return model.NewAppError("VALIDATION_ERROR", strings.Join(messages, " "), field, model.ErrInvalidInput)
}

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_sealer_mock.go -package=mock

// TokenSealer защищает токены сессии, которые клиент хранит в локальной
// базе SQLite. Он ничего не знает о сети, базе данных или пользователях.
//
// Схема работы:
//
//	Salt       = random(16)                          (Шаг 1)
//	Key        = Argon2id(secret, Salt)              (Шаг 2)
//	Sealed     = base64(Salt ‖ Nonce ‖ AES-GCM(Key)) (Шаг 3)
type TokenSealer interface {
	// Seal шифрует plaintext и возвращает base64-строку, пригодную для
	// хранения в текстовой колонке. Пустая строка остаётся пустой.
	Seal(plaintext string) (string, error)

	// Open расшифровывает результат Seal. Возвращает ошибку, если секрет
	// другой или данные повреждены.
	Open(sealed string) (string, error)
}

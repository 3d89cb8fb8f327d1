package domain

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Формат номера сертификата: CDA-{8 цифр от текущего времени}-{5 цифр случайных}
// Глобальная уникальность не гарантируется, контрольной суммы нет

const certificatePrefix = "CDA"

// NewCertificateNumber генерирует номер сертификата для нового осмотра
// Номер присваивается один раз и на коллизии не проверяется
func NewCertificateNumber() string {
	return certificateNumber(time.Now(), rand.Intn(100000))
}

// certificateNumber собирает номер из момента времени и случайного значения.
// Временная часть - последние 8 цифр миллисекунд Unix-времени,
// случайная часть дополняется нулями до 5 цифр
func certificateNumber(ts time.Time, n int) string {
	millis := strconv.FormatInt(ts.UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return fmt.Sprintf("%s-%s-%05d", certificatePrefix, millis, n)
}

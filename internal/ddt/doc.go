// Package ddt реализует клиент DDT CLI Parser API.
//
// # Обзор
//
// DDT CLI Parser — сервис, преобразующий CLI-команды устройств Huawei
// в строки автоматизированных тестовых сценариев. Пакет инкапсулирует
// весь цикл работы с сервисом: один синхронный HTTP POST, валидацию
// статуса ответа, извлечение строк и рендеринг результата.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент сервиса. Один исходящий запрос на вызов, без retry.
// Ошибки классифицируются по sentinel-ошибкам из errors.go
// (ErrConnect, ErrTimeout, ErrHTTPStatus, ErrAPIStatus),
// вызывающий код ветвится через errors.Is.
//
//	client := ddt.NewClient(ddt.DefaultAPIURL, 60*time.Second)
//	resp, err := client.Query(ctx, commands, products)
//
// ## ExtractLines
//
// Разворачивает result-map ответа в плоский список строк кода.
// Ключи обходятся в лексикографическом порядке — порядок
// детерминирован и воспроизводим между вызовами.
//
// ## RenderScript / RenderJSON
//
// RenderScript собирает строки в итоговый текст сценария.
// RenderJSON возвращает сырой ответ сервиса с отступами —
// неизвестные поля сохраняются как есть.
package ddt

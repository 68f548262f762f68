// Package cli реализует командную поверхность ddtgen.
//
// # Обзор
//
// ddtgen — однокомандная утилита: собирает CLI-команды из флагов или
// файла, вызывает DDT CLI Parser API и пишет результат в файл или stdout.
// Пакет не содержит бизнес-логики разбора — она живёт в internal/ddt.
//
// # Ключевые компоненты
//
// ## NewRootCmd
//
// Фабрика корневой cobra-команды. Источники команд (--cli и --cli-file)
// взаимоисключающие, ровно один обязателен. Пайплайн в RunE:
// сбор команд → Query → извлечение/рендеринг → вывод.
//
// ## ReadCommandFile
//
// Чтение команд из текстового файла: по одной на строку,
// пустые строки и #-комментарии пропускаются.
//
// ## Output
//
// Вывод результата. Данные идут в stdout (или в файл по --output),
// сообщения Success/Error — в stderr. Это позволяет использовать pipe:
// ddtgen ... --json | jq .
package cli

package editor

//go:generate moq -out observer_mock.go . Observer

// Observer получает уведомления об изменениях рабочего набора.
// Индексы строк действительны только до следующего изменения модели.
type Observer interface {
	// RowsInserted строки [first, last] вставлены
	RowsInserted(first, last int)
	// RowsRemoved строки удалены; индексы в порядке удаления
	RowsRemoved(rows []int)
	// DataChanged содержимое строк [first, last] изменилось
	DataChanged(first, last int)
	// LayoutChanged порядок строк изменился после сортировки
	LayoutChanged()
	// Reset рабочий набор перестроен целиком
	Reset()
	// UndoChanged изменилась доступность отмены
	UndoChanged(available bool)
}

package editor

import "errors"

var (
	// ErrNoUndo журнал отмены пуст
	ErrNoUndo = errors.New("nothing to undo")
	// ErrUnknownDictionary словарь не входит в редактируемый набор
	ErrUnknownDictionary = errors.New("unknown dictionary")
	// ErrRowOutOfRange индекс строки вне рабочего набора
	ErrRowOutOfRange = errors.New("row out of range")
	// ErrColumnNotEditable колонка вычисляемая
	ErrColumnNotEditable = errors.New("column is not editable")
	// ErrNoDictionaries редактор создан без словарей
	ErrNoDictionaries = errors.New("no dictionaries to edit")
	// ErrInvalidFilter не удалось разобрать фильтр
	ErrInvalidFilter = errors.New("invalid filter")
)

package conflict

import (
	"context"
	"log/slog"
	"time"

	httpClient "github.com/salekeeper/salekeeper/internal/client/api"
	"github.com/salekeeper/salekeeper/internal/client/storage"
	"github.com/salekeeper/salekeeper/internal/models"
)

// Detector сравнивает ожидаемую клиентом версию записи с текущей
// версией на сервере перед применением update. Обнаруженный конфликт
// фиксируется в журнале, но никогда не блокирует запись: действует
// стратегия last-write-wins.
type Detector struct {
	apiClient httpClient.ClientAPI
	log       storage.ConflictLog
	logger    *slog.Logger
}

// NewDetector creates a new conflict detector
func NewDetector(apiClient httpClient.ClientAPI, log storage.ConflictLog, logger *slog.Logger) *Detector {
	return &Detector{
		apiClient: apiClient,
		log:       log,
		logger:    logger,
	}
}

// Check сверяет ожидаемую версию записи с версией на сервере и при
// расхождении дописывает запись в журнал конфликтов.
//
// Детектор чисто наблюдательный: он не повторяет запросы, не
// прерывает и не откладывает ожидающую запись. Ошибка получения
// версии (например, записи еще нет) - не свидетельство конфликта,
// проверка молча пропускается. Ошибка журнала логируется и
// проглатывается.
func (d *Detector) Check(ctx context.Context, table, recordID string, expectedVersion int64, payload map[string]any) {
	serverVersion, err := d.apiClient.SelectVersion(ctx, table, recordID)
	if err != nil {
		// Нет базовой версии для сравнения - пропускаем проверку
		d.logger.Debug("Conflict check skipped: version fetch failed",
			"table", table,
			"record_id", recordID,
			"error", err)
		return
	}

	if serverVersion == expectedVersion {
		return
	}

	d.logger.Warn("Write-write conflict detected",
		"table", table,
		"record_id", recordID,
		"server_version", serverVersion,
		"client_version", expectedVersion,
		"strategy", models.ConflictStrategyLWW)

	record := &models.ConflictRecord{
		Table:                  table,
		RecordID:               recordID,
		ServerVersionTimestamp: serverVersion,
		ClientVersionTimestamp: expectedVersion,
		Strategy:               models.ConflictStrategyLWW,
		// Только имена полей: значения могут содержать чувствительные
		// данные, которым не место в audit log
		PayloadKeys: models.PayloadKeys(payload),
		RecordedAt:  time.Now(),
	}

	if err := d.log.AppendConflict(ctx, record); err != nil {
		d.logger.Warn("Failed to append conflict record",
			"table", table,
			"record_id", recordID,
			"error", err)
	}
}

// Package loader contém a leitura do log de downloads em JSON delimitado por linha
package loader

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/downloads-insights/internal/domain"
	"github.com/vfg2006/downloads-insights/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxLineSize = 1024 * 1024

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

type DownloadLoader interface {
	// Load lê o arquivo e devolve os downloads válidos. Em caso de erro de arquivo,
	// Result continua preenchido com o que foi lido antes da falha.
	Load(ctx context.Context, path string) (*Result, error)
}

// Result é o resultado de uma carga: downloads válidos e linhas rejeitadas
type Result struct {
	Records  []domain.DownloadRecord
	Rejected []*LineError
}

type jsonLinesLoader struct{}

func NewJSONLinesLoader() DownloadLoader {
	return &jsonLinesLoader{}
}

func (l *jsonLinesLoader) Load(ctx context.Context, path string) (*Result, error) {
	result := &Result{
		Records:  []domain.DownloadRecord{},
		Rejected: []*LineError{},
	}

	logger := log.ForContext(ctx).WithField("file", path)

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("%w: %s: %w", ErrOpenFile, path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	lineNumber := 0
	for {
		raw, tooLong, err := readLine(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, errors.Wrapf(ErrReadFile, "%s after line %d: %v", path, lineNumber, err)
		}
		lineNumber++

		if err := ctx.Err(); err != nil {
			return result, err
		}

		var lineErr *LineError
		if tooLong {
			lineErr = NewLineError(ErrLineTooLong, lineNumber, fmt.Sprintf("limit is %d bytes", maxLineSize))
		} else {
			line := bytes.TrimSpace(raw)
			if len(line) == 0 {
				continue
			}

			var record domain.DownloadRecord
			record, lineErr = decodeLine(line, lineNumber)
			if lineErr == nil {
				result.Records = append(result.Records, record)
				continue
			}
		}

		logger.WithFields(log.Fields{
			"line":  lineErr.Line,
			"error": lineErr.Error(),
		}).Warn("Linha de download ignorada")
		result.Rejected = append(result.Rejected, lineErr)
	}

	logger.WithFields(log.Fields{
		"records":  len(result.Records),
		"rejected": len(result.Rejected),
	}).Info("Arquivo de downloads carregado")

	return result, nil
}

// readLine lê a próxima linha sem o terminador. Linhas acima de maxLineSize são
// consumidas até o fim e descartadas, com tooLong indicando o descarte.
func readLine(reader *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			return nil, false, err
		}

		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}

		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

func decodeLine(line []byte, lineNumber int) (domain.DownloadRecord, *LineError) {
	var record domain.DownloadRecord
	if err := json.Unmarshal(line, &record); err != nil {
		return domain.DownloadRecord{}, NewLineError(ErrDecodeLine, lineNumber, err.Error())
	}

	// showId vazio é uma chave válida; só a ausência ou null rejeita a linha
	if json.Get(line, "downloadIdentifier", "showId").ValueType() != jsoniter.StringValue {
		return domain.DownloadRecord{}, NewLineError(ErrMissingShowID, lineNumber, "")
	}

	return record, nil
}

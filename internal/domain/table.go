package domain

// Row é uma linha de relatório; células são string, int64 ou nil
type Row []any

// Table é um relatório tabular, serializável em JSON ou CSV
type Table []Row
